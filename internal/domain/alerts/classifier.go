// Package alerts contiene la clasificación pura de alertas de inventario:
// urgencia por caducidad y bandera de stock bajo. No tiene estado: es una
// función de (producto, fecha actual, umbrales) y se recalcula en cada
// refresco.
package alerts

import "time"

// Nivel es la clasificación cerrada de urgencia por caducidad.
type Nivel int

const (
	NivelVerde    Nivel = iota // caduca después de la ventana, sin alerta
	NivelAmarillo              // caduca dentro de la ventana (por defecto 8-30 días)
	NivelRojo                  // caduca en 7 días o menos
	NivelVencido               // ya caducó
	NivelSinFecha              // el producto no tiene fecha de caducidad
)

// String devuelve la etiqueta del nivel tal como la consume la UI.
func (n Nivel) String() string {
	switch n {
	case NivelAmarillo:
		return "amarillo"
	case NivelRojo:
		return "rojo"
	case NivelVencido:
		return "vencido"
	case NivelSinFecha:
		return "sin_fecha"
	default:
		return "verde"
	}
}

// UmbralRojoDias es el límite superior del nivel rojo: caduca hoy o dentro
// de los próximos 7 días.
const UmbralRojoDias = 7

// DiasHastaCaducidad calcula los días calendario entre hoy y la fecha de
// caducidad. Ambas fechas se truncan a medianoche antes de restar, para
// evitar errores de off-by-one por fracciones de día; negativo = ya caducó.
func DiasHastaCaducidad(fecha, hoy time.Time) int {
	f := time.Date(fecha.Year(), fecha.Month(), fecha.Day(), 0, 0, 0, 0, time.UTC)
	h := time.Date(hoy.Year(), hoy.Month(), hoy.Day(), 0, 0, 0, 0, time.UTC)
	return int(f.Sub(h) / (24 * time.Hour))
}

// Clasificar asigna el nivel de alerta por caducidad y devuelve también los
// días restantes (sin significado cuando el nivel es SinFecha).
// ventanaDias es el horizonte del nivel amarillo (por defecto 30).
func Clasificar(fecha *time.Time, hoy time.Time, ventanaDias int) (Nivel, int) {
	if fecha == nil {
		return NivelSinFecha, 0
	}
	dias := DiasHastaCaducidad(*fecha, hoy)
	switch {
	case dias < 0:
		return NivelVencido, dias
	case dias <= UmbralRojoDias:
		return NivelRojo, dias
	case dias <= ventanaDias:
		return NivelAmarillo, dias
	default:
		return NivelVerde, dias
	}
}

// StockBajo indica si la cantidad está en o bajo el umbral de reposición.
func StockBajo(cantidad, umbral int) bool {
	return cantidad <= umbral
}
