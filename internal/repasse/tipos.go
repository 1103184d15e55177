package repasse

// ParcelaCompetencia é a visão de uma parcela que o cálculo de repasse
// precisa: identificação de contrato/cliente, advogado principal, modelo de
// distribuição e o valor bruto em centavos. A competência (mes/ano) vem
// resolvida pelo chamador — hoje derivada do vencimento da parcela.
type ParcelaCompetencia struct {
	ParcelaID      uint
	Numero         int
	ContratoID     uint
	NumeroContrato string
	ClienteID      uint
	ClienteNome    string

	AdvogadoID   uint // advogado principal do contrato
	AdvogadoNome string
	ModeloCodigo string
	ComSocio     bool

	Status             string
	Mes                int
	Ano                int
	ValorBrutoCentavos int64
}

// ItemDistribuicao é um item do modelo já resolvido para o cálculo.
// AdvogadoID nulo em item ADVOGADO significa "o principal do contrato".
type ItemDistribuicao struct {
	PercentualBp int
	Destino      string
	AdvogadoID   *uint
	AdvogadoNome string
}

// ModeloResolvido é o modelo de distribuição pronto para uso no cálculo.
type ModeloResolvido struct {
	Codigo string
	Itens  []ItemDistribuicao
	Valido bool // soma dos itens == 10000 bp
}

// AliquotaResolvida carrega a alíquota aplicada e o período de origem.
// Fallback indica que não havia configuração e o cálculo usou 0 bp.
type AliquotaResolvida struct {
	PercentualBp int  `json:"percentualBp"`
	Mes          int  `json:"mes"`
	Ano          int  `json:"ano"`
	Fallback     bool `json:"fallback"`
}

// Pendencias são os avisos de configuração de uma linha. Nenhum deles
// interrompe a prévia: a linha sai zerada ou marcada para revisão manual.
type Pendencias struct {
	ModeloAusente        bool `json:"modeloAusente"`
	SplitAusenteComSocio bool `json:"splitAusenteComSocio"`
	SplitExcedido        bool `json:"splitExcedido"`
}

// ValorAdvogado é a fatia de um advogado em uma linha ou no total.
type ValorAdvogado struct {
	AdvogadoID uint   `json:"advogadoId"`
	Nome       string `json:"nome"`
	Valor      int64  `json:"valor"`
}

// Linha é o resultado do cálculo para uma parcela. Valores em centavos.
// Construída uma vez por prévia e nunca mutada depois.
type Linha struct {
	ParcelaID      uint   `json:"parcelaId"`
	ContratoID     uint   `json:"contratoId"`
	NumeroContrato string `json:"numeroContrato"`
	ClienteID      uint   `json:"clienteId"`
	ClienteNome    string `json:"clienteNome"`

	ValorBruto int64 `json:"valorBruto"`
	AliquotaBp int   `json:"aliquotaBp"`
	Imposto    int64 `json:"imposto"`
	Liquido    int64 `json:"liquido"`

	Advogados    []ValorAdvogado `json:"advogados"`
	Escritorio   int64           `json:"escritorio"`
	FundoReserva int64           `json:"fundoReserva"`
	Indicacao    int64           `json:"indicacao"`

	Pendencias Pendencias `json:"pendencias"`
}

// Totais agrega todas as linhas da competência.
type Totais struct {
	Valor        int64           `json:"valor"`
	Imposto      int64           `json:"imposto"`
	Liquido      int64           `json:"liquido"`
	Advogados    []ValorAdvogado `json:"advogados"`
	Escritorio   int64           `json:"escritorio"`
	FundoReserva int64           `json:"fundoReserva"`
	Indicacao    int64           `json:"indicacao"`
}

// Previa é a resposta completa de GET /repasses/previa.
type Previa struct {
	AliquotaUsada AliquotaResolvida `json:"aliquotaUsada"`
	Linhas        []Linha           `json:"linhas"`
	Totais        Totais            `json:"totais"`
}

// Colaboradores de dados injetados no engine (nunca singletons ambientes):
// a implementação de produção usa gorm, os testes usam fakes em memória.

type BuscadorParcelas interface {
	// ParcelasDaCompetencia devolve as parcelas candidatas de (mes, ano),
	// incluindo canceladas; a seleção final é do engine.
	ParcelasDaCompetencia(mes, ano int) ([]ParcelaCompetencia, error)
}

type BuscadorAliquota interface {
	// AliquotaDoPeriodo devolve a alíquota configurada para (mes, ano).
	AliquotaDoPeriodo(mes, ano int) (percentualBp int, encontrada bool, err error)
}

type BuscadorModelo interface {
	// ModeloPorCodigo devolve nil (sem erro) quando o modelo não existe.
	ModeloPorCodigo(codigo string) (*ModeloResolvido, error)
}
