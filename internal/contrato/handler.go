package contrato

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/barcellos-advocacia/api-gestao/internal/parcela"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB           *gorm.DB
	Repo         *Repository
	ParcelasRepo *parcela.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repo: NewRepository(db), ParcelasRepo: parcela.NewRepository(db)}
}

// POST /contratos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var c Contrato
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if c.Numero == "" {
		http.Error(w, "Número do contrato é obrigatório", http.StatusBadRequest)
		return
	}
	if c.ValorTotalCentavos < 0 {
		http.Error(w, "Valor não pode ser negativo", http.StatusBadRequest)
		return
	}
	if c.Status == "" {
		c.Status = StatusEmAndamento
	}
	if err := h.Repo.Salvar(&c); err != nil {
		http.Error(w, "Erro ao salvar contrato", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// GET /contratos — aceita ?clienteId= e ?advogadoId=
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	var (
		list []Contrato
		err  error
	)
	q := r.URL.Query()
	switch {
	case q.Get("clienteId") != "":
		id, convErr := strconv.Atoi(q.Get("clienteId"))
		if convErr != nil {
			http.Error(w, "clienteId inválido", http.StatusBadRequest)
			return
		}
		list, err = h.Repo.ListarPorCliente(uint(id))
	case q.Get("advogadoId") != "":
		id, convErr := strconv.Atoi(q.Get("advogadoId"))
		if convErr != nil {
			http.Error(w, "advogadoId inválido", http.StatusBadRequest)
			return
		}
		list, err = h.Repo.ListarPorAdvogado(uint(id))
	default:
		list, err = h.Repo.ListarTodos()
	}
	if err != nil {
		http.Error(w, "Erro ao listar contratos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// GET /contratos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(c)
}

// POST /contratos/{id}/parcelas/gerar
// Gera as parcelas previstas do contrato. Só funciona em contrato sem parcelas.
func (h *Handler) GerarParcelas(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}
	existentes, err := h.ParcelasRepo.ContagemPorContrato(c.ID)
	if err != nil {
		http.Error(w, "Erro ao verificar parcelas existentes", http.StatusInternalServerError)
		return
	}
	if existentes > 0 {
		http.Error(w, "Contrato já possui parcelas geradas", http.StatusConflict)
		return
	}
	if c.QtdParcelas <= 0 {
		http.Error(w, "Contrato sem quantidade de parcelas definida", http.StatusBadRequest)
		return
	}

	parcelas := c.GerarParcelas()
	if err := h.ParcelasRepo.SalvarLote(parcelas); err != nil {
		http.Error(w, "Erro ao gerar parcelas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(parcelas)
}

// PUT /contratos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var c Contrato
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	c.ID = uint(id)
	if err := h.Repo.Atualizar(&c); err != nil {
		http.Error(w, "Erro ao atualizar contrato", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(c)
}

// DELETE /contratos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Deletar(uint(id)); err != nil {
		http.Error(w, "Erro ao excluir contrato", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
