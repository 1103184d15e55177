package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/barcellos-advocacia/api-gestao/internal/advogado"
	"github.com/barcellos-advocacia/api-gestao/internal/aliquota"
	"github.com/barcellos-advocacia/api-gestao/internal/auth"
	"github.com/barcellos-advocacia/api-gestao/internal/cliente"
	"github.com/barcellos-advocacia/api-gestao/internal/comentario"
	"github.com/barcellos-advocacia/api-gestao/internal/contrato"
	"github.com/barcellos-advocacia/api-gestao/internal/modelodistribuicao"
	"github.com/barcellos-advocacia/api-gestao/internal/parcela"
	"github.com/barcellos-advocacia/api-gestao/internal/repasse"
	"github.com/barcellos-advocacia/api-gestao/internal/usuario"
	"github.com/barcellos-advocacia/api-gestao/internal/utils/db"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// Cada pacote migra os próprios modelos.
	migracoes := []func(*gorm.DB) error{
		usuario.Migrate,
		auth.Migrate,
		cliente.Migrate,
		advogado.Migrate,
		contrato.Migrate,
		parcela.Migrate,
		aliquota.Migrate,
		modelodistribuicao.Migrate,
		comentario.Migrate,
	}
	for _, migrar := range migracoes {
		if err := migrar(database); err != nil {
			log.Fatal("Erro nas migrações:", err)
		}
	}

	// Handlers
	usuarioHandler := usuario.NewHandler(database)
	clienteHandler := cliente.NewHandler(database)
	advogadoHandler := advogado.NewHandler(database)
	contratoHandler := contrato.NewHandler(database)
	parcelaHandler := parcela.NewHandler(database)
	aliquotaHandler := aliquota.NewHandler(database)
	modeloHandler := modelodistribuicao.NewHandler(database)
	comentarioHandler := comentario.NewHandler(database)
	repasseHandler := repasse.NewHandler(database)

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")
	r.HandleFunc("/auth/refresh", auth.RefreshHTTPHandler(database)).Methods("POST")
	r.HandleFunc("/auth/logout", auth.LogoutHTTPHandler(database)).Methods("POST")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	admin := auth.RequireAdmin
	financeiro := auth.RequirePerfil(auth.PerfilAdmin, auth.PerfilFinanceiro)

	// Usuários (administração)
	api.Handle("/usuarios", admin(http.HandlerFunc(usuarioHandler.Criar))).Methods("POST")
	api.Handle("/usuarios", admin(http.HandlerFunc(usuarioHandler.Listar))).Methods("GET")
	api.HandleFunc("/usuarios/{id}", usuarioHandler.BuscarPorID).Methods("GET")
	api.Handle("/usuarios/{id}", admin(http.HandlerFunc(usuarioHandler.Atualizar))).Methods("PUT")
	api.Handle("/usuarios/{id}", admin(http.HandlerFunc(usuarioHandler.Deletar))).Methods("DELETE")
	api.HandleFunc("/usuarios/{id}/senha", usuarioHandler.RedefinirSenha).Methods("POST")

	// Clientes
	api.Handle("/clientes", financeiro(http.HandlerFunc(clienteHandler.Criar))).Methods("POST")
	api.HandleFunc("/clientes", clienteHandler.Listar).Methods("GET")
	api.HandleFunc("/clientes/{id}", clienteHandler.BuscarPorID).Methods("GET")
	api.Handle("/clientes/{id}", financeiro(http.HandlerFunc(clienteHandler.Atualizar))).Methods("PUT")
	api.Handle("/clientes/{id}", admin(http.HandlerFunc(clienteHandler.Deletar))).Methods("DELETE")

	// Advogados
	api.Handle("/advogados", admin(http.HandlerFunc(advogadoHandler.Criar))).Methods("POST")
	api.HandleFunc("/advogados", advogadoHandler.Listar).Methods("GET")
	api.HandleFunc("/advogados/{id}", advogadoHandler.BuscarPorID).Methods("GET")
	api.Handle("/advogados/{id}", admin(http.HandlerFunc(advogadoHandler.Atualizar))).Methods("PUT")
	api.Handle("/advogados/{id}", admin(http.HandlerFunc(advogadoHandler.Deletar))).Methods("DELETE")

	// Contratos
	api.Handle("/contratos", financeiro(http.HandlerFunc(contratoHandler.Criar))).Methods("POST")
	api.HandleFunc("/contratos", contratoHandler.Listar).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.BuscarPorID).Methods("GET")
	api.Handle("/contratos/{id}", financeiro(http.HandlerFunc(contratoHandler.Atualizar))).Methods("PUT")
	api.Handle("/contratos/{id}", admin(http.HandlerFunc(contratoHandler.Deletar))).Methods("DELETE")
	api.Handle("/contratos/{id}/parcelas/gerar", financeiro(http.HandlerFunc(contratoHandler.GerarParcelas))).Methods("POST")

	// Parcelas
	api.HandleFunc("/contratos/{cid}/parcelas", parcelaHandler.ListarPorContrato).Methods("GET")
	api.Handle("/contratos/{cid}/parcelas", financeiro(http.HandlerFunc(parcelaHandler.CriarParaContrato))).Methods("POST")
	api.Handle("/parcelas/{pid}", financeiro(http.HandlerFunc(parcelaHandler.Atualizar))).Methods("PUT")
	api.Handle("/parcelas/{pid}", admin(http.HandlerFunc(parcelaHandler.Deletar))).Methods("DELETE")
	api.Handle("/parcelas/{pid}/status", financeiro(http.HandlerFunc(parcelaHandler.AtualizarStatus))).Methods("PATCH")
	api.Handle("/parcelas/{pid}/recebimento", financeiro(http.HandlerFunc(parcelaHandler.RegistrarRecebimento))).Methods("PATCH")

	// Configuração de alíquotas (admin)
	api.Handle("/aliquotas", admin(http.HandlerFunc(aliquotaHandler.Criar))).Methods("POST")
	api.HandleFunc("/aliquotas", aliquotaHandler.Listar).Methods("GET")
	api.Handle("/aliquotas/{id}", admin(http.HandlerFunc(aliquotaHandler.Atualizar))).Methods("PUT")
	api.Handle("/aliquotas/{id}", admin(http.HandlerFunc(aliquotaHandler.Deletar))).Methods("DELETE")

	// Modelos de distribuição (admin)
	api.Handle("/modelos-distribuicao", admin(http.HandlerFunc(modeloHandler.Criar))).Methods("POST")
	api.HandleFunc("/modelos-distribuicao", modeloHandler.Listar).Methods("GET")
	api.HandleFunc("/modelos-distribuicao/{id}", modeloHandler.BuscarPorID).Methods("GET")
	api.Handle("/modelos-distribuicao/{id}/itens", admin(http.HandlerFunc(modeloHandler.AtualizarItens))).Methods("PUT")
	api.Handle("/modelos-distribuicao/{id}", admin(http.HandlerFunc(modeloHandler.Deletar))).Methods("DELETE")

	// Comentários de contrato
	api.HandleFunc("/contratos/{id}/comentarios", comentarioHandler.ListarPorContrato).Methods("GET")
	api.HandleFunc("/contratos/{id}/comentarios", comentarioHandler.CriarParaContrato).Methods("POST")
	api.HandleFunc("/comentarios/{id}", comentarioHandler.Deletar).Methods("DELETE")

	// Prévia de repasses da competência
	api.Handle("/repasses/previa", financeiro(http.HandlerFunc(repasseHandler.Previa))).Methods("GET")

	// CORS para o front
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{os.Getenv("FRONT_ORIGIN")},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	fmt.Println("Servidor rodando em http://localhost:" + porta)
	log.Fatal(http.ListenAndServe(":"+porta, c.Handler(r)))
}
