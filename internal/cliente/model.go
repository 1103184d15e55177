package cliente

import "gorm.io/gorm"

// Tipos de pessoa aceitos no cadastro.
const (
	PessoaFisica   = "FISICA"
	PessoaJuridica = "JURIDICA"
)

// Cliente representa um cliente do escritório. Documento guarda CPF ou CNPJ
// sem máscara; o tipo de pessoa é derivado do tamanho do documento.
type Cliente struct {
	gorm.Model
	Nome      string `gorm:"size:255;not null" json:"nome"`
	Documento string `gorm:"size:14;index" json:"documento"`
	Tipo      string `gorm:"size:10;not null" json:"tipo"`
	Email     string `gorm:"size:255" json:"email"`
	Telefone  string `gorm:"size:50" json:"telefone"`
	Endereco  string `gorm:"size:500" json:"endereco"`
	UF        string `gorm:"size:2" json:"uf"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Cliente{})
}
