package modelodistribuicao

import "gorm.io/gorm"

// Repository encapsula operações de banco para ModeloDistribuicao
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Salvar(m *ModeloDistribuicao) error {
	return r.DB.Create(m).Error
}

func (r *Repository) ListarTodos() ([]ModeloDistribuicao, error) {
	var list []ModeloDistribuicao
	err := r.DB.Preload("Itens", func(db *gorm.DB) *gorm.DB {
		return db.Order("item_modelos.ordem asc")
	}).Order("codigo asc").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(id uint) (*ModeloDistribuicao, error) {
	var m ModeloDistribuicao
	err := r.DB.Preload("Itens", func(db *gorm.DB) *gorm.DB {
		return db.Order("item_modelos.ordem asc")
	}).First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// BuscarPorCodigo devolve o modelo com itens na ordem configurada.
func (r *Repository) BuscarPorCodigo(codigo string) (*ModeloDistribuicao, error) {
	var m ModeloDistribuicao
	err := r.DB.Preload("Itens", func(db *gorm.DB) *gorm.DB {
		return db.Order("item_modelos.ordem asc")
	}).Where("codigo = ?", codigo).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SubstituirItens troca todos os itens do modelo dentro de uma transação.
func (r *Repository) SubstituirItens(modeloID uint, itens []ItemModelo) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("modelo_distribuicao_id = ?", modeloID).Delete(&ItemModelo{}).Error; err != nil {
			return err
		}
		for i := range itens {
			itens[i].ID = 0
			itens[i].ModeloDistribuicaoID = modeloID
		}
		if len(itens) == 0 {
			return nil
		}
		return tx.Create(&itens).Error
	})
}

func (r *Repository) Atualizar(m *ModeloDistribuicao) error {
	return r.DB.Save(m).Error
}

func (r *Repository) Deletar(id uint) error {
	return r.DB.Delete(&ModeloDistribuicao{}, id).Error
}
