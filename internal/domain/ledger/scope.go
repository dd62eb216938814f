package ledger

import (
	"time"

	"github.com/tu-usuario/ventas-api/internal/domain/entity"
)

// Scope rango de fechas que decide qué registros alimentan un rollup.
// Tres formas: sin límites (From y To nil), un día exacto (From == To) o
// un rango abierto donde cualquiera de los dos extremos puede faltar.
//
// Para ventas se compara la FECHA de created_at (la hora se descarta antes
// de comparar: una venta a las 23:59 y otra a las 00:01 del día siguiente
// nunca caen en el mismo día). Para gastos se usa expense_date directo,
// que ya es solo fecha.
type Scope struct {
	From *time.Time // inclusive; nil = sin límite inferior
	To   *time.Time // inclusive; nil = sin límite superior
}

// Unbounded alcance sin filtro: todo registro queda incluido.
func Unbounded() Scope { return Scope{} }

// Day alcance de un solo día calendario.
func Day(d time.Time) Scope {
	day := CivilDate(d)
	return Scope{From: &day, To: &day}
}

// Range alcance [from, to] con extremos opcionales.
func Range(from, to *time.Time) Scope {
	s := Scope{}
	if from != nil {
		f := CivilDate(*from)
		s.From = &f
	}
	if to != nil {
		t := CivilDate(*to)
		s.To = &t
	}
	return s
}

// IsUnbounded reporta si el alcance no filtra nada.
func (s Scope) IsUnbounded() bool { return s.From == nil && s.To == nil }

// CivilDate trunca un instante a su fecha calendario (medianoche UTC).
// La truncación ocurre SIEMPRE antes de comparar rangos; comparar
// timestamps completos contaría mal las ventas cercanas a medianoche.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// contains decide si una fecha (ya truncada) cae dentro del alcance.
// Una fecha cero es un defecto de datos: queda FUERA de cualquier alcance
// acotado (fail closed) para no sumar registros de fecha desconocida.
func (s Scope) contains(d time.Time) bool {
	if s.IsUnbounded() {
		return true
	}
	if d.IsZero() {
		return false
	}
	if s.From != nil && d.Before(*s.From) {
		return false
	}
	if s.To != nil && d.After(*s.To) {
		return false
	}
	return true
}

// FilterSales devuelve las ventas cuya fecha de creación cae en el alcance,
// en el mismo orden y sin deduplicar. dropped cuenta las ventas excluidas
// de un alcance acotado por tener fecha cero/inválida, para que el llamador
// las reporte como defecto de datos en lugar de sumarlas en silencio.
func (s Scope) FilterSales(sales []entity.Sale) (in []entity.Sale, dropped int) {
	if s.IsUnbounded() {
		return sales, 0
	}
	in = make([]entity.Sale, 0, len(sales))
	for _, sale := range sales {
		if sale.CreatedAt.IsZero() {
			dropped++
			continue
		}
		if s.contains(CivilDate(sale.CreatedAt)) {
			in = append(in, sale)
		}
	}
	return in, dropped
}

// FilterExpenses igual que FilterSales pero sobre expense_date.
func (s Scope) FilterExpenses(expenses []entity.Expense) (in []entity.Expense, dropped int) {
	if s.IsUnbounded() {
		return expenses, 0
	}
	in = make([]entity.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.ExpenseDate.IsZero() {
			dropped++
			continue
		}
		if s.contains(CivilDate(e.ExpenseDate)) {
			in = append(in, e)
		}
	}
	return in, dropped
}
