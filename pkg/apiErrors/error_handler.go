package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidWindow       = "VAL_004" // Janela de datas inválida
	ErrInvalidChartKind    = "VAL_005" // Tipo de gráfico desconhecido
	ErrInvalidAggregate    = "VAL_006" // Métrica ou partição desconhecida

	// Erros de roteamento
	ErrRouteNotFound    = "HTTP_001" // Rota inexistente
	ErrMethodNotAllowed = "HTTP_002" // Método não suportado pela rota

	// Erros de dados
	ErrDatasetNotFound = "DATA_001" // Dataset não carregado
	ErrInvalidDataset  = "DATA_002" // Dataset rejeitado na ingestão

	// Erros de agendamento
	ErrJobNotFound       = "CRON_001" // Job desconhecido
	ErrJobAlreadyRunning = "CRON_002" // Job já em execução

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInvalidWindow:       http.StatusBadRequest,
	ErrInvalidChartKind:    http.StatusBadRequest,
	ErrInvalidAggregate:    http.StatusBadRequest,
	ErrRouteNotFound:       http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrDatasetNotFound:     http.StatusNotFound,
	ErrInvalidDataset:      http.StatusUnprocessableEntity,
	ErrJobNotFound:         http.StatusNotFound,
	ErrJobAlreadyRunning:   http.StatusConflict,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrCommunication:       http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP de um código de erro
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
