package comentario

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/barcellos-advocacia/api-gestao/internal/auth"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// POST /contratos/{id}/comentarios
func (h *Handler) CriarParaContrato(w http.ResponseWriter, r *http.Request) {
	cid, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do contrato inválido", http.StatusBadRequest)
		return
	}
	var c Comentario
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if c.Texto == "" {
		http.Error(w, "Texto é obrigatório", http.StatusBadRequest)
		return
	}
	c.ContratoID = uint(cid)
	c.UsuarioID = auth.UsuarioIDDoContexto(r.Context())
	if err := h.Repo.Salvar(&c); err != nil {
		http.Error(w, "Erro ao salvar comentário", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// GET /contratos/{id}/comentarios
func (h *Handler) ListarPorContrato(w http.ResponseWriter, r *http.Request) {
	cid, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do contrato inválido", http.StatusBadRequest)
		return
	}
	list, err := h.Repo.ListarPorContrato(uint(cid))
	if err != nil {
		http.Error(w, "Erro ao listar comentários", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// DELETE /comentarios/{id} — só o autor ou um admin remove
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Comentário não encontrado", http.StatusNotFound)
		return
	}
	usuarioID := auth.UsuarioIDDoContexto(r.Context())
	perfil := auth.PerfilDoContexto(r.Context())
	if c.UsuarioID != usuarioID && perfil != auth.PerfilAdmin {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}
	if err := h.Repo.Deletar(uint(id)); err != nil {
		http.Error(w, "Erro ao excluir comentário", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
