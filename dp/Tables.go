package dp

import (
	"github.com/samuelfneumann/godp/utils/matutils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// StateValues is a state-value table, indexed by state id, together with
// the largest change of each sweep that produced it
type StateValues struct {
	values *mat.VecDense
	deltas []float64
}

// NewStateValues returns a StateValues table holding a copy of values.
// It is mainly used to seed ValueIterationFrom.
func NewStateValues(values []float64) *StateValues {
	if len(values) == 0 {
		return &StateValues{values: &mat.VecDense{}}
	}
	data := make([]float64, len(values))
	copy(data, values)
	return &StateValues{values: mat.NewVecDense(len(data), data)}
}

// Len returns the number of states in the table
func (v *StateValues) Len() int {
	return v.values.Len()
}

// At returns the value of state
func (v *StateValues) At(state int) float64 {
	return v.values.AtVec(state)
}

// Vector returns a copy of the table
func (v *StateValues) Vector() *mat.VecDense {
	if v.values.Len() == 0 {
		return &mat.VecDense{}
	}
	vec := mat.NewVecDense(v.values.Len(), nil)
	vec.CopyVec(v.values)
	return vec
}

// Deltas returns the largest change of every sweep, in order
func (v *StateValues) Deltas() []float64 {
	deltas := make([]float64, len(v.deltas))
	copy(deltas, v.deltas)
	return deltas
}

// Sweeps returns the number of sweeps performed
func (v *StateValues) Sweeps() int {
	return len(v.deltas)
}

// String returns the table as a column vector
func (v *StateValues) String() string {
	return matutils.Format(v.values)
}

// ActionValues is a state-action value table of shape
// (states x actions), together with the largest change of each sweep
// that produced it
type ActionValues struct {
	values *mat.Dense
	deltas []float64
}

// NewActionValues returns an ActionValues table with the given rows. It
// is mainly used to seed QValueIterationFrom.
func NewActionValues(rows [][]float64) *ActionValues {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return &ActionValues{values: &mat.Dense{}}
	}
	r, c := len(rows), len(rows[0])

	data := make([]float64, 0, r*c)
	for _, row := range rows {
		if len(row) != c {
			panic("newActionValues: rows must have equal lengths")
		}
		data = append(data, row...)
	}
	return &ActionValues{values: mat.NewDense(r, c, data)}
}

// Dims returns the number of states and actions of the table
func (q *ActionValues) Dims() (states, actions int) {
	if q.values.IsEmpty() {
		return 0, 0
	}
	return q.values.Dims()
}

// At returns the value of the action with index action in state
func (q *ActionValues) At(state, action int) float64 {
	return q.values.At(state, action)
}

// Row returns a copy of the action values of state
func (q *ActionValues) Row(state int) *mat.VecDense {
	_, c := q.Dims()
	row := mat.NewVecDense(c, nil)
	row.CopyVec(q.values.RowView(state))
	return row
}

// Max returns the largest action value of state
func (q *ActionValues) Max(state int) float64 {
	return floats.Max(q.values.RawRowView(state))
}

// Matrix returns a copy of the table
func (q *ActionValues) Matrix() *mat.Dense {
	return mat.DenseCopyOf(q.values)
}

// Deltas returns the largest change of every sweep, in order
func (q *ActionValues) Deltas() []float64 {
	deltas := make([]float64, len(q.deltas))
	copy(deltas, q.deltas)
	return deltas
}

// Sweeps returns the number of sweeps performed
func (q *ActionValues) Sweeps() int {
	return len(q.deltas)
}

// String returns the table as a matrix
func (q *ActionValues) String() string {
	return matutils.Format(q.values)
}
