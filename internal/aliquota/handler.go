package aliquota

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

func valida(a *AliquotaPeriodo) string {
	if a.Mes < 1 || a.Mes > 12 {
		return "Mês inválido (1-12)"
	}
	if a.Ano < 2000 {
		return "Ano inválido"
	}
	if a.PercentualBp < 0 || a.PercentualBp > 10000 {
		return "Percentual inválido (0-10000 bp)"
	}
	return ""
}

// POST /aliquotas
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var a AliquotaPeriodo
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if msg := valida(&a); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if _, err := h.Repo.BuscarPorPeriodo(a.Mes, a.Ano); err == nil {
		http.Error(w, "Já existe alíquota para este período", http.StatusConflict)
		return
	}
	if err := h.Repo.Salvar(&a); err != nil {
		http.Error(w, "Erro ao salvar alíquota", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(a)
}

// GET /aliquotas
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListarTodas()
	if err != nil {
		http.Error(w, "Erro ao listar alíquotas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// PUT /aliquotas/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	atual, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Alíquota não encontrada", http.StatusNotFound)
		return
	}
	var dados AliquotaPeriodo
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	atual.Mes = dados.Mes
	atual.Ano = dados.Ano
	atual.PercentualBp = dados.PercentualBp
	if msg := valida(atual); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if existente, err := h.Repo.BuscarPorPeriodo(atual.Mes, atual.Ano); err == nil && existente.ID != atual.ID {
		http.Error(w, "Já existe alíquota para este período", http.StatusConflict)
		return
	}
	if err := h.Repo.Atualizar(atual); err != nil {
		http.Error(w, "Erro ao atualizar alíquota", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(atual)
}

// DELETE /aliquotas/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Deletar(uint(id)); err != nil {
		http.Error(w, "Erro ao excluir alíquota", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
