package repasse

import (
	"encoding/json"
	"net/http"
	"strconv"

	"gorm.io/gorm"
)

type Handler struct {
	Engine *Engine
}

func NewHandler(db *gorm.DB) *Handler {
	repo := NewRepository(db)
	return &Handler{Engine: NewEngine(repo, repo, repo)}
}

// GET /repasses/previa?ano=2026&mes=6
func (h *Handler) Previa(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ano, err := strconv.Atoi(q.Get("ano"))
	if err != nil {
		http.Error(w, "Parâmetro 'ano' inválido", http.StatusBadRequest)
		return
	}
	mes, err := strconv.Atoi(q.Get("mes"))
	if err != nil || mes < 1 || mes > 12 {
		http.Error(w, "Parâmetro 'mes' inválido (1-12)", http.StatusBadRequest)
		return
	}

	previa, err := h.Engine.Previa(mes, ano)
	if err != nil {
		http.Error(w, "Erro ao calcular prévia de repasses", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(previa)
}
