package service

import (
	"github.com/tallercr/workshop-api/internal/domain"
)

// DeriveClientStatus computes the status a client should carry given its
// jobs. The rule, in precedence order:
//
//	no jobs                                  -> current status unchanged
//	any job "pendiente"                      -> "pendiente"
//	every counted job "cerrado"              -> "cerrado"
//	any "seguimiento" and none "pendiente"   -> "seguimiento"
//	otherwise                                -> current status unchanged
//
// Only jobs whose status is one of the three known values are tallied,
// but "every job cerrado" is checked against the full job list: a job
// with an unknown status keeps the client out of "cerrado".
func DeriveClientStatus(current domain.Status, jobs []domain.Job) domain.Status {
	if len(jobs) == 0 {
		return current
	}

	var seguimiento, cerrado, pendiente int
	for _, j := range jobs {
		switch j.Status {
		case domain.StatusSeguimiento:
			seguimiento++
		case domain.StatusCerrado:
			cerrado++
		case domain.StatusPendiente:
			pendiente++
		}
	}

	switch {
	case pendiente > 0:
		return domain.StatusPendiente
	case cerrado == len(jobs):
		return domain.StatusCerrado
	case seguimiento > 0 && pendiente == 0:
		return domain.StatusSeguimiento
	}
	return current
}
