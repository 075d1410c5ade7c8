package entity

import "time"

// Sesion es el contexto de identidad de un navegador: el token bearer del
// servicio remoto más el usuario que lo obtuvo. Se pasa explícitamente a
// los casos de uso que lo necesitan; no hay estado global de sesión.
type Sesion struct {
	ID       string // uuid generado al iniciar sesión
	Token    string // bearer del servicio remoto
	Usuario  Usuario
	CreadaEn time.Time
	ExpiraEn time.Time
}

// Expirada indica si la sesión ya no es utilizable en el instante dado.
func (s *Sesion) Expirada(ahora time.Time) bool {
	return s == nil || !ahora.Before(s.ExpiraEn)
}
