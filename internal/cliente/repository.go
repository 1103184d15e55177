package cliente

import "gorm.io/gorm"

// Repository encapsula operações de banco para Cliente
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Salvar(c *Cliente) error {
	return r.DB.Create(c).Error
}

func (r *Repository) ListarTodos() ([]Cliente, error) {
	var list []Cliente
	err := r.DB.Order("nome asc").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(id uint) (*Cliente, error) {
	var c Cliente
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// ExisteDocumento informa se já há outro cliente com o mesmo documento.
func (r *Repository) ExisteDocumento(documento string) (bool, error) {
	var count int64
	err := r.DB.Model(&Cliente{}).Where("documento = ?", documento).Count(&count).Error
	return count > 0, err
}

func (r *Repository) Atualizar(c *Cliente) error {
	return r.DB.Save(c).Error
}

func (r *Repository) Deletar(id uint) error {
	return r.DB.Delete(&Cliente{}, id).Error
}
