package parcela

import "gorm.io/gorm"

// Repository encapsula operações de banco para Parcela
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Salvar(p *Parcela) error {
	return r.DB.Create(p).Error
}

func (r *Repository) SalvarLote(ps []Parcela) error {
	if len(ps) == 0 {
		return nil
	}
	return r.DB.Create(&ps).Error
}

func (r *Repository) ListarPorContrato(contratoID uint) ([]Parcela, error) {
	var list []Parcela
	err := r.DB.Where("contrato_id = ?", contratoID).Order("numero asc").Find(&list).Error
	return list, err
}

// ListarPorVencimento devolve as parcelas com vencimento dentro de (mes, ano),
// em ordem estável de contrato e número.
func (r *Repository) ListarPorVencimento(mes, ano int) ([]Parcela, error) {
	var list []Parcela
	err := r.DB.
		Where("EXTRACT(MONTH FROM data_vencimento) = ? AND EXTRACT(YEAR FROM data_vencimento) = ?", mes, ano).
		Order("contrato_id asc, numero asc").
		Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(id uint) (*Parcela, error) {
	var p Parcela
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Atualizar(p *Parcela) error {
	return r.DB.Save(p).Error
}

func (r *Repository) Deletar(id uint) error {
	return r.DB.Delete(&Parcela{}, id).Error
}

// ContagemPorContrato informa quantas parcelas o contrato já tem.
func (r *Repository) ContagemPorContrato(contratoID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&Parcela{}).Where("contrato_id = ?", contratoID).Count(&count).Error
	return count, err
}
