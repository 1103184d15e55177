package advogado

import "gorm.io/gorm"

// Repository encapsula operações de banco para Advogado
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Salvar(a *Advogado) error {
	return r.DB.Create(a).Error
}

func (r *Repository) ListarTodos() ([]Advogado, error) {
	var list []Advogado
	err := r.DB.Order("nome asc").Find(&list).Error
	return list, err
}

func (r *Repository) ListarAtivos() ([]Advogado, error) {
	var list []Advogado
	err := r.DB.Where("ativo = ?", true).Order("nome asc").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(id uint) (*Advogado, error) {
	var a Advogado
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) Atualizar(a *Advogado) error {
	return r.DB.Save(a).Error
}

func (r *Repository) Deletar(id uint) error {
	return r.DB.Delete(&Advogado{}, id).Error
}
