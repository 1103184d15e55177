package usuario

import "gorm.io/gorm"

// Repository encapsula operações de banco para Usuario
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Salvar(u *Usuario) error {
	return r.DB.Create(u).Error
}

func (r *Repository) ListarTodos() ([]Usuario, error) {
	var list []Usuario
	err := r.DB.Order("nome asc").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(id uint) (*Usuario, error) {
	var u Usuario
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) BuscarPorEmail(email string) (*Usuario, error) {
	var u Usuario
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) Atualizar(u *Usuario) error {
	return r.DB.Save(u).Error
}

func (r *Repository) AtualizarSenha(id uint, hash string, precisaRedefinir bool) error {
	return r.DB.Model(&Usuario{}).Where("id = ?", id).Updates(map[string]interface{}{
		"senha":                   hash,
		"precisa_redefinir_senha": precisaRedefinir,
	}).Error
}

func (r *Repository) Deletar(id uint) error {
	return r.DB.Delete(&Usuario{}, id).Error
}
