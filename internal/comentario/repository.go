package comentario

import "gorm.io/gorm"

// Repository encapsula operações de banco para Comentario
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Salvar(c *Comentario) error {
	return r.DB.Create(c).Error
}

func (r *Repository) ListarPorContrato(contratoID uint) ([]Comentario, error) {
	var list []Comentario
	err := r.DB.Where("contrato_id = ?", contratoID).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(id uint) (*Comentario, error) {
	var c Comentario
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Atualizar(c *Comentario) error {
	return r.DB.Save(c).Error
}

func (r *Repository) Deletar(id uint) error {
	return r.DB.Delete(&Comentario{}, id).Error
}
