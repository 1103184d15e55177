package usuario

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/barcellos-advocacia/api-gestao/internal/auth"
	"github.com/barcellos-advocacia/api-gestao/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// request DTOs
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type criarUsuarioRequest struct {
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	Senha  string `json:"senha"`
	Perfil string `json:"perfil"`
}

type redefinirSenhaRequest struct {
	SenhaAtual string `json:"senhaAtual"`
	NovaSenha  string `json:"novaSenha"`
}

// Handler encapsula DB e repository
type Handler struct {
	DB   *gorm.DB
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repo: NewRepository(db)}
}

func perfilValido(p string) bool {
	switch p {
	case auth.PerfilAdmin, auth.PerfilFinanceiro, auth.PerfilConsulta:
		return true
	}
	return false
}

// Login gera um JWT para credenciais válidas e grava o refresh token em cookie.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	u, err := h.Repo.BuscarPorEmail(req.Email)
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}
	if !u.Ativo {
		http.Error(w, "usuário desativado", http.StatusUnauthorized)
		return
	}
	if !utils.CheckSenha(u.Senha, req.Senha) {
		http.Error(w, "senha incorreta", http.StatusUnauthorized)
		return
	}

	token, err := auth.IssueTokensOnLogin(h.DB, w, u.ID, u.Perfil)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token":                 token,
		"perfil":                u.Perfil,
		"precisaRedefinirSenha": u.PrecisaRedefinirSenha,
	})
}

// POST /usuarios (admin)
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if !perfilValido(req.Perfil) {
		http.Error(w, "Perfil inválido. Use 'ADMIN', 'FINANCEIRO' ou 'CONSULTA'.", http.StatusBadRequest)
		return
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	u := Usuario{
		Nome:   req.Nome,
		Email:  req.Email,
		Senha:  hash,
		Perfil: req.Perfil,
		Ativo:  true,
	}
	if err := h.Repo.Salvar(&u); err != nil {
		http.Error(w, "erro ao salvar usuário", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(u)
}

// GET /usuarios (admin)
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "erro ao listar usuários", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(list)
}

// GET /usuarios/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	userID := auth.UsuarioIDDoContexto(r.Context())
	perfil := auth.PerfilDoContexto(r.Context())

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if perfil != auth.PerfilAdmin && uint(id) != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}
	u, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(u)
}

// PUT /usuarios/{id} (admin)
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	atual, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}

	var dados Usuario
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if dados.Perfil != "" && !perfilValido(dados.Perfil) {
		http.Error(w, "Perfil inválido. Use 'ADMIN', 'FINANCEIRO' ou 'CONSULTA'.", http.StatusBadRequest)
		return
	}

	atual.Nome = dados.Nome
	atual.Email = dados.Email
	if dados.Perfil != "" {
		atual.Perfil = dados.Perfil
	}
	atual.Ativo = dados.Ativo
	if err := h.Repo.Atualizar(atual); err != nil {
		http.Error(w, "erro ao atualizar usuário", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(atual)
}

// POST /usuarios/{id}/senha — o próprio usuário troca a senha
func (h *Handler) RedefinirSenha(w http.ResponseWriter, r *http.Request) {
	userID := auth.UsuarioIDDoContexto(r.Context())

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if uint(id) != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	var req redefinirSenhaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	u, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}
	if !utils.CheckSenha(u.Senha, req.SenhaAtual) {
		http.Error(w, "senha atual incorreta", http.StatusUnauthorized)
		return
	}

	hash, err := utils.HashSenha(req.NovaSenha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}
	if err := h.Repo.AtualizarSenha(uint(id), hash, false); err != nil {
		http.Error(w, "erro ao atualizar senha", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("senha atualizada com sucesso"))
}

// DELETE /usuarios/{id} (admin)
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Deletar(uint(id)); err != nil {
		http.Error(w, "erro ao excluir usuário", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
