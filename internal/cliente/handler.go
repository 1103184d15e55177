package cliente

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/barcellos-advocacia/api-gestao/internal/notificacao"
	"github.com/barcellos-advocacia/api-gestao/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// POST /clientes
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var c Cliente
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if !utils.ValidarDocumento(c.Documento) {
		http.Error(w, "CPF/CNPJ inválido", http.StatusBadRequest)
		return
	}
	c.Documento = utils.LimparDocumento(c.Documento)
	if len(c.Documento) == 11 {
		c.Tipo = PessoaFisica
	} else {
		c.Tipo = PessoaJuridica
	}

	// Documento duplicado não bloqueia o cadastro, só dispara o alerta.
	if existe, err := h.Repo.ExisteDocumento(c.Documento); err == nil && existe {
		go notificacao.EnviarWebhookAlerta(c.Documento)
	}

	if err := h.Repo.Salvar(&c); err != nil {
		http.Error(w, "Erro ao salvar cliente", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// GET /clientes
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "Erro ao listar clientes", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// GET /clientes/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Cliente não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(c)
}

// PUT /clientes/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var dados Cliente
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if !utils.ValidarDocumento(dados.Documento) {
		http.Error(w, "CPF/CNPJ inválido", http.StatusBadRequest)
		return
	}
	dados.ID = uint(id)
	dados.Documento = utils.LimparDocumento(dados.Documento)
	if len(dados.Documento) == 11 {
		dados.Tipo = PessoaFisica
	} else {
		dados.Tipo = PessoaJuridica
	}
	if err := h.Repo.Atualizar(&dados); err != nil {
		http.Error(w, "Erro ao atualizar cliente", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(dados)
}

// DELETE /clientes/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Deletar(uint(id)); err != nil {
		http.Error(w, "Erro ao excluir cliente", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
