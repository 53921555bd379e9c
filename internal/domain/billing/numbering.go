package billing

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/menuiserie-crm/internal/domain/entity"
)

// PaymentSeries serie de la numeración de pagos.
const PaymentSeries = "PAY"

// FormatNumber numeración oficial: PREFIJO-AAAA-NNNNNN (FAC-2026-000042).
func FormatNumber(prefix string, year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%06d", prefix, year, seq)
}

// DraftNumber número provisional único de un borrador (DRAFT-1A2B3C4D).
func DraftNumber() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return entity.DraftNumberPrefix + strings.ToUpper(id[:8])
}
