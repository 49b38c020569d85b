package billing

import (
	"time"

	"github.com/escritoriopro/backoffice-api/internal/domain"
	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Limites de parcelamento aceitos pelo sistema.
const (
	MaxInstallments  = 48
	MaxIntervalMonth = 12
)

// SplitAmount divide um valor monetário em n partes quase iguais preservando
// o total ao centavo: converte para centavos inteiros, distribui a parte base
// e a última parcela absorve o resto do arredondamento.
func SplitAmount(total decimal.Decimal, parts int) ([]decimal.Decimal, error) {
	if parts <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if !total.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	cents := total.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	base := cents / int64(parts)
	remainder := cents - base*int64(parts)

	values := make([]decimal.Decimal, parts)
	for i := 0; i < parts; i++ {
		v := base
		if i == parts-1 {
			v += remainder
		}
		values[i] = decimal.New(v, -2)
	}
	return values, nil
}

// Installment é uma posição do plano de parcelamento: vencimento e status
// inicial (overdue quando o vencimento já passou em relação a hoje).
type Installment struct {
	DueDate time.Time
	Status  string
}

// Schedule gera os vencimentos de um plano: dueDate[i] = firstDue + i*intervalMonths.
// A aritmética de meses usa calendário civil com clamp explícito no fim do mês:
// 31/01 + 1 mês = 29/02 (ou 28/02), nunca 02/03 ou 03/03. today define o status
// inicial de cada parcela e é parâmetro para manter a função determinística.
func Schedule(firstDue time.Time, count, intervalMonths int, today time.Time) ([]Installment, error) {
	if count < 1 || count > MaxInstallments {
		return nil, domain.ErrInvalidInput
	}
	if intervalMonths < 1 || intervalMonths > MaxIntervalMonth {
		return nil, domain.ErrInvalidInput
	}

	todayDate := truncateDate(today)
	plan := make([]Installment, count)
	for i := 0; i < count; i++ {
		due := AddMonths(firstDue, i*intervalMonths)
		status := entity.AccountStatusOpen
		if due.Before(todayDate) {
			status = entity.AccountStatusOverdue
		}
		plan[i] = Installment{DueDate: due, Status: status}
	}
	return plan, nil
}

// AddMonths soma meses a uma data com clamp no último dia válido do mês
// de destino. Não usa time.AddDate diretamente porque ele "transborda"
// (31/01 + 1 mês = 02/03 ou 03/03 dependendo do ano).
func AddMonths(d time.Time, months int) time.Time {
	firstOfTarget := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()

	day := d.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, time.UTC)
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
