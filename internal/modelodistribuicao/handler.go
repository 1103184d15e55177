package modelodistribuicao

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

// DTO de saída: o modelo mais o diagnóstico de consistência, para a tela
// de configuração apontar modelos que não fecham 100%.
type modeloDTO struct {
	ModeloDistribuicao
	SomaBp      int  `json:"somaBp"`
	Consistente bool `json:"consistente"`
}

func paraDTO(m ModeloDistribuicao) modeloDTO {
	return modeloDTO{ModeloDistribuicao: m, SomaBp: m.SomaBp(), Consistente: m.Consistente()}
}

func validaItens(itens []ItemModelo) string {
	for _, item := range itens {
		if item.PercentualBp < 0 || item.PercentualBp > 10000 {
			return "Percentual de item inválido (0-10000 bp)"
		}
		if !DestinoValido(item.Destino) {
			return "Destino inválido. Use 'ADVOGADO', 'ESCRITORIO', 'FUNDO_RESERVA' ou 'INDICACAO'."
		}
		if item.Destino != DestinoAdvogado && item.AdvogadoID != nil {
			return "advogadoId só é aceito em item com destino ADVOGADO"
		}
	}
	return ""
}

// POST /modelos-distribuicao
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var m ModeloDistribuicao
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if m.Codigo == "" {
		http.Error(w, "Código é obrigatório", http.StatusBadRequest)
		return
	}
	if msg := validaItens(m.Itens); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	// Modelo que não soma 10000 bp é salvo mesmo assim; a prévia de repasse
	// marca pendência nas parcelas que o referenciam.
	if err := h.Repo.Salvar(&m); err != nil {
		http.Error(w, "Erro ao salvar modelo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(paraDTO(m))
}

// GET /modelos-distribuicao
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "Erro ao listar modelos", http.StatusInternalServerError)
		return
	}
	out := make([]modeloDTO, 0, len(list))
	for _, m := range list {
		out = append(out, paraDTO(m))
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// GET /modelos-distribuicao/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	m, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Modelo não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(paraDTO(*m))
}

// PUT /modelos-distribuicao/{id}/itens — substitui a lista de itens
func (h *Handler) AtualizarItens(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if _, err := h.Repo.BuscarPorID(uint(id)); err != nil {
		http.Error(w, "Modelo não encontrado", http.StatusNotFound)
		return
	}
	var itens []ItemModelo
	if err := json.NewDecoder(r.Body).Decode(&itens); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if msg := validaItens(itens); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if err := h.Repo.SubstituirItens(uint(id), itens); err != nil {
		http.Error(w, "Erro ao atualizar itens", http.StatusInternalServerError)
		return
	}
	m, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Erro ao recarregar modelo", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(paraDTO(*m))
}

// DELETE /modelos-distribuicao/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Deletar(uint(id)); err != nil {
		http.Error(w, "Erro ao excluir modelo", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
