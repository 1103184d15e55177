package contrato

import "gorm.io/gorm"

// Repository encapsula operações de banco para Contrato
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Salvar(c *Contrato) error {
	return r.DB.Create(c).Error
}

func (r *Repository) ListarTodos() ([]Contrato, error) {
	var list []Contrato
	err := r.DB.Order("numero asc").Find(&list).Error
	return list, err
}

func (r *Repository) ListarPorCliente(clienteID uint) ([]Contrato, error) {
	var list []Contrato
	err := r.DB.Where("cliente_id = ?", clienteID).Order("numero asc").Find(&list).Error
	return list, err
}

func (r *Repository) ListarPorAdvogado(advogadoID uint) ([]Contrato, error) {
	var list []Contrato
	err := r.DB.Where("advogado_id = ?", advogadoID).Order("numero asc").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(id uint) (*Contrato, error) {
	var c Contrato
	if err := r.DB.Preload("Parcelas", func(db *gorm.DB) *gorm.DB {
		return db.Order("parcelas.numero asc")
	}).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Atualizar(c *Contrato) error {
	return r.DB.Save(c).Error
}

func (r *Repository) Deletar(id uint) error {
	return r.DB.Delete(&Contrato{}, id).Error
}
