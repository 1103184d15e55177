package main

import (
	"log"
	"time"

	"github.com/barcellos-advocacia/api-gestao/internal/aliquota"
	"github.com/barcellos-advocacia/api-gestao/internal/auth"
	"github.com/barcellos-advocacia/api-gestao/internal/modelodistribuicao"
	"github.com/barcellos-advocacia/api-gestao/internal/usuario"
	"github.com/barcellos-advocacia/api-gestao/internal/utils"
	"github.com/barcellos-advocacia/api-gestao/internal/utils/db"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// Seed inicial: usuário admin, modelo de distribuição padrão e alíquotas
// do ano corrente. Rodar uma vez após o primeiro deploy.
func main() {
	_ = godotenv.Load()

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}
	for _, migrar := range []func(*gorm.DB) error{usuario.Migrate, aliquota.Migrate, modelodistribuicao.Migrate} {
		if err := migrar(database); err != nil {
			log.Fatal("Erro nas migrações:", err)
		}
	}

	usuarios := usuario.NewRepository(database)
	if _, err := usuarios.BuscarPorEmail("admin@barcellos.adv.br"); err != nil {
		senha, err := utils.GerarSenhaTemporaria()
		if err != nil {
			log.Fatal("Erro ao gerar senha:", err)
		}
		hash, err := utils.HashSenha(senha)
		if err != nil {
			log.Fatal("Erro ao processar senha:", err)
		}
		admin := usuario.Usuario{
			Nome:                  "Administrador",
			Email:                 "admin@barcellos.adv.br",
			Senha:                 hash,
			Perfil:                auth.PerfilAdmin,
			Ativo:                 true,
			PrecisaRedefinirSenha: true,
		}
		if err := usuarios.Salvar(&admin); err != nil {
			log.Fatal("Erro ao criar admin:", err)
		}
		log.Printf("Usuário admin criado. Senha temporária: %s", senha)
	}

	modelos := modelodistribuicao.NewRepository(database)
	if _, err := modelos.BuscarPorCodigo("PADRAO"); err != nil {
		padrao := modelodistribuicao.ModeloDistribuicao{
			Codigo: "PADRAO",
			Nome:   "Distribuição padrão do escritório",
			Itens: []modelodistribuicao.ItemModelo{
				{Ordem: 1, PercentualBp: 6000, Destino: modelodistribuicao.DestinoAdvogado},
				{Ordem: 2, PercentualBp: 3000, Destino: modelodistribuicao.DestinoEscritorio},
				{Ordem: 3, PercentualBp: 1000, Destino: modelodistribuicao.DestinoFundoReserva},
			},
		}
		if err := modelos.Salvar(&padrao); err != nil {
			log.Fatal("Erro ao criar modelo padrão:", err)
		}
		log.Println("Modelo de distribuição PADRAO criado")
	}

	aliquotas := aliquota.NewRepository(database)
	ano := time.Now().Year()
	for mes := 1; mes <= 12; mes++ {
		if _, err := aliquotas.BuscarPorPeriodo(mes, ano); err == nil {
			continue
		}
		a := aliquota.AliquotaPeriodo{Mes: mes, Ano: ano, PercentualBp: 500}
		if err := aliquotas.Salvar(&a); err != nil {
			log.Fatal("Erro ao criar alíquota:", err)
		}
	}
	log.Printf("Alíquotas de %d garantidas", ano)
}
