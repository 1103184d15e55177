package repasse

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviaHandlerParametrosInvalidos(t *testing.T) {
	h := &Handler{Engine: engineDeTeste(cenarioCompleto())}

	casos := []string{
		"/repasses/previa",
		"/repasses/previa?ano=2026",
		"/repasses/previa?ano=2026&mes=0",
		"/repasses/previa?ano=2026&mes=13",
		"/repasses/previa?ano=abc&mes=6",
	}
	for _, url := range casos {
		req := httptest.NewRequest(http.MethodGet, url, nil)
		rec := httptest.NewRecorder()
		h.Previa(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, url)
	}
}

func TestPreviaHandlerRespostaJSON(t *testing.T) {
	h := &Handler{Engine: engineDeTeste(cenarioCompleto())}

	req := httptest.NewRequest(http.MethodGet, "/repasses/previa?ano=2026&mes=6", nil)
	rec := httptest.NewRecorder()
	h.Previa(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		AliquotaUsada struct {
			PercentualBp int `json:"percentualBp"`
			Mes          int `json:"mes"`
			Ano          int `json:"ano"`
		} `json:"aliquotaUsada"`
		Linhas []struct {
			ParcelaID  uint  `json:"parcelaId"`
			ValorBruto int64 `json:"valorBruto"`
			Imposto    int64 `json:"imposto"`
			Liquido    int64 `json:"liquido"`
			Pendencias struct {
				ModeloAusente bool `json:"modeloAusente"`
			} `json:"pendencias"`
		} `json:"linhas"`
		Totais struct {
			Valor   int64 `json:"valor"`
			Liquido int64 `json:"liquido"`
		} `json:"totais"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, 500, body.AliquotaUsada.PercentualBp)
	assert.Equal(t, 5, body.AliquotaUsada.Mes)
	assert.Equal(t, 2026, body.AliquotaUsada.Ano)
	require.Len(t, body.Linhas, 2)
	assert.Equal(t, int64(30000), body.Totais.Valor)
	assert.True(t, body.Linhas[1].Pendencias.ModeloAusente)
}
