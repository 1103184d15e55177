package notificacao

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
)

// EnviarWebhookAlerta avisa o canal configurado que um cliente foi cadastrado
// com CPF/CNPJ já existente. Falha de entrega só gera log, nunca erro.
func EnviarWebhookAlerta(documento string) {
	url := os.Getenv("WEBHOOK_ALERTA_URL")
	if url == "" {
		return
	}
	payload := map[string]string{
		"mensagem":  "Alerta: novo cliente cadastrado com documento já existente",
		"documento": documento,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Erro ao enviar webhook: %v", err)
		return
	}
	defer resp.Body.Close()
}
