package parcela

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

/* ============================== Handler & DTOs ============================== */

type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// DTO usado no POST /contratos/{cid}/parcelas
type ParcelaCreateDTO struct {
	Numero         int       `json:"numero"`
	ValorCentavos  int64     `json:"valorCentavos"`
	DataVencimento time.Time `json:"dataVencimento"`
	Status         string    `json:"status"` // se vazio, assume PREVISTA
}

// DTO de saída: parcela mais o status efetivo (ATRASADA é derivado).
type ParcelaDTO struct {
	Parcela
	StatusEfetivo string `json:"statusEfetivo"`
}

type recebimentoDTO struct {
	ValorRecebidoCentavos int64      `json:"valorRecebidoCentavos"`
	DataRecebimento       *time.Time `json:"dataRecebimento"`
}

func paraDTO(p Parcela, agora time.Time) ParcelaDTO {
	return ParcelaDTO{Parcela: p, StatusEfetivo: p.StatusEfetivo(agora)}
}

/* ============================== Endpoints ============================== */

// GET /contratos/{cid}/parcelas
func (h *Handler) ListarPorContrato(w http.ResponseWriter, r *http.Request) {
	cid, err := strconv.Atoi(mux.Vars(r)["cid"])
	if err != nil {
		http.Error(w, "ID do contrato inválido", http.StatusBadRequest)
		return
	}
	parcelas, err := h.Repo.ListarPorContrato(uint(cid))
	if err != nil {
		http.Error(w, "Erro ao buscar parcelas", http.StatusInternalServerError)
		return
	}
	agora := time.Now()
	out := make([]ParcelaDTO, 0, len(parcelas))
	for _, p := range parcelas {
		out = append(out, paraDTO(p, agora))
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

// POST /contratos/{cid}/parcelas
func (h *Handler) CriarParaContrato(w http.ResponseWriter, r *http.Request) {
	cid, err := strconv.Atoi(mux.Vars(r)["cid"])
	if err != nil {
		http.Error(w, "ID do contrato inválido", http.StatusBadRequest)
		return
	}
	var in ParcelaCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.Status == "" {
		in.Status = StatusPrevista
	}
	if !StatusValido(in.Status) {
		http.Error(w, "Status inválido. Use 'PREVISTA', 'RECEBIDA' ou 'CANCELADA'.", http.StatusBadRequest)
		return
	}
	if in.ValorCentavos < 0 {
		http.Error(w, "Valor não pode ser negativo", http.StatusBadRequest)
		return
	}

	p := &Parcela{
		ContratoID:     uint(cid),
		Numero:         in.Numero,
		ValorCentavos:  in.ValorCentavos,
		DataVencimento: in.DataVencimento,
		Status:         in.Status,
	}
	if err := h.Repo.Salvar(p); err != nil {
		http.Error(w, "Erro ao criar parcela", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(paraDTO(*p, time.Now()))
}

// PATCH /parcelas/{pid}/status
// Regra: não permite rebaixar uma parcela já RECEBIDA.
func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
	pid, err := strconv.Atoi(mux.Vars(r)["pid"])
	if err != nil {
		http.Error(w, "ID da parcela inválido", http.StatusBadRequest)
		return
	}
	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if !StatusValido(payload.Status) {
		http.Error(w, "Status inválido. Use 'PREVISTA', 'RECEBIDA' ou 'CANCELADA'.", http.StatusBadRequest)
		return
	}

	atual, err := h.Repo.BuscarPorID(uint(pid))
	if err != nil {
		http.Error(w, "Parcela não encontrada", http.StatusNotFound)
		return
	}
	if atual.Status == StatusRecebida && payload.Status != StatusRecebida {
		http.Error(w, "Não é permitido alterar o status de uma parcela já recebida", http.StatusBadRequest)
		return
	}

	atual.Status = payload.Status
	if payload.Status != StatusRecebida {
		atual.ValorRecebidoCentavos = nil
		atual.DataRecebimento = nil
	}
	if err := h.Repo.Atualizar(atual); err != nil {
		http.Error(w, "Erro ao atualizar status", http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(paraDTO(*atual, time.Now()))
}

// PATCH /parcelas/{pid}/recebimento — marca RECEBIDA com valor e data.
func (h *Handler) RegistrarRecebimento(w http.ResponseWriter, r *http.Request) {
	pid, err := strconv.Atoi(mux.Vars(r)["pid"])
	if err != nil {
		http.Error(w, "ID da parcela inválido", http.StatusBadRequest)
		return
	}
	var in recebimentoDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.ValorRecebidoCentavos < 0 {
		http.Error(w, "Valor recebido não pode ser negativo", http.StatusBadRequest)
		return
	}

	atual, err := h.Repo.BuscarPorID(uint(pid))
	if err != nil {
		http.Error(w, "Parcela não encontrada", http.StatusNotFound)
		return
	}
	if atual.Status == StatusCancelada {
		http.Error(w, "Parcela cancelada não pode receber pagamento", http.StatusBadRequest)
		return
	}

	quando := time.Now()
	if in.DataRecebimento != nil {
		quando = *in.DataRecebimento
	}
	atual.Status = StatusRecebida
	atual.ValorRecebidoCentavos = &in.ValorRecebidoCentavos
	atual.DataRecebimento = &quando
	if err := h.Repo.Atualizar(atual); err != nil {
		http.Error(w, "Erro ao registrar recebimento", http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(paraDTO(*atual, time.Now()))
}

// PUT /parcelas/{pid}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	pid, err := strconv.Atoi(mux.Vars(r)["pid"])
	if err != nil {
		http.Error(w, "ID da parcela inválido", http.StatusBadRequest)
		return
	}
	atual, err := h.Repo.BuscarPorID(uint(pid))
	if err != nil {
		http.Error(w, "Parcela não encontrada", http.StatusNotFound)
		return
	}

	var in ParcelaCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.ValorCentavos < 0 {
		http.Error(w, "Valor não pode ser negativo", http.StatusBadRequest)
		return
	}
	atual.Numero = in.Numero
	atual.ValorCentavos = in.ValorCentavos
	atual.DataVencimento = in.DataVencimento
	if in.Status != "" {
		if !StatusValido(in.Status) {
			http.Error(w, "Status inválido. Use 'PREVISTA', 'RECEBIDA' ou 'CANCELADA'.", http.StatusBadRequest)
			return
		}
		// Mesma regra do PATCH de status: parcela recebida não volta atrás.
		if atual.Status == StatusRecebida && in.Status != StatusRecebida {
			http.Error(w, "Não é permitido alterar o status de uma parcela já recebida", http.StatusBadRequest)
			return
		}
		atual.Status = in.Status
		if in.Status != StatusRecebida {
			atual.ValorRecebidoCentavos = nil
			atual.DataRecebimento = nil
		}
	}
	if err := h.Repo.Atualizar(atual); err != nil {
		http.Error(w, "Erro ao atualizar parcela", http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(paraDTO(*atual, time.Now()))
}

// DELETE /parcelas/{pid}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	pid, err := strconv.Atoi(mux.Vars(r)["pid"])
	if err != nil {
		http.Error(w, "ID da parcela inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Deletar(uint(pid)); err != nil {
		http.Error(w, "Erro ao excluir parcela", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
