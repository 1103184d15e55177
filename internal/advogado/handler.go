package advogado

import (
	"encoding/json"
	"net/http"
	"strconv"

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

// POST /advogados
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var a Advogado
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if a.CPF != "" && !utils.ValidarCPF(a.CPF) {
		http.Error(w, "CPF inválido", http.StatusBadRequest)
		return
	}
	a.CPF = utils.LimparDocumento(a.CPF)
	if err := h.Repo.Salvar(&a); err != nil {
		http.Error(w, "Erro ao salvar advogado", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(a)
}

// GET /advogados
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	var (
		list []Advogado
		err  error
	)
	if r.URL.Query().Get("ativos") == "true" {
		list, err = h.Repo.ListarAtivos()
	} else {
		list, err = h.Repo.ListarTodos()
	}
	if err != nil {
		http.Error(w, "Erro ao listar advogados", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// GET /advogados/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	a, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Advogado não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(a)
}

// PUT /advogados/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var dados Advogado
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if dados.CPF != "" && !utils.ValidarCPF(dados.CPF) {
		http.Error(w, "CPF inválido", http.StatusBadRequest)
		return
	}
	dados.ID = uint(id)
	dados.CPF = utils.LimparDocumento(dados.CPF)
	if err := h.Repo.Atualizar(&dados); err != nil {
		http.Error(w, "Erro ao atualizar advogado", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(dados)
}

// DELETE /advogados/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Deletar(uint(id)); err != nil {
		http.Error(w, "Erro ao excluir advogado", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
