package aliquota

import "gorm.io/gorm"

// Repository encapsula operações de banco para AliquotaPeriodo
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Salvar(a *AliquotaPeriodo) error {
	return r.DB.Create(a).Error
}

func (r *Repository) ListarTodas() ([]AliquotaPeriodo, error) {
	var list []AliquotaPeriodo
	err := r.DB.Order("ano desc, mes desc").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(id uint) (*AliquotaPeriodo, error) {
	var a AliquotaPeriodo
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// BuscarPorPeriodo devolve a alíquota configurada para (mes, ano), se houver.
func (r *Repository) BuscarPorPeriodo(mes, ano int) (*AliquotaPeriodo, error) {
	var a AliquotaPeriodo
	err := r.DB.Where("mes = ? AND ano = ?", mes, ano).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) Atualizar(a *AliquotaPeriodo) error {
	return r.DB.Save(a).Error
}

func (r *Repository) Deletar(id uint) error {
	return r.DB.Delete(&AliquotaPeriodo{}, id).Error
}
