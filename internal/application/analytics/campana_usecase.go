package analytics

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/application/inventory"
	"github.com/jhoicas/inventario-web/internal/domain"
	"github.com/jhoicas/inventario-web/internal/domain/alerts"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
	"github.com/jhoicas/inventario-web/internal/infrastructure/metrics"
)

// CampanaUseCase alimenta la campana de notificaciones: consume
// GET /productos/alertas y clasifica en dos niveles visuales (roja cuando
// quedan 7 días o menos, con sub-estado terminal "vencida"; amarilla el
// resto), ordenadas por fecha de caducidad ascendente.
//
// El resultado se cachea por sesión con el TTL configurado (300 s por
// defecto), equivalente al temporizador de refresco de la UI; ?refrescar
// fuerza la lectura. Un janitor de fondo purga entradas vencidas y se
// detiene al cancelar su contexto.
type CampanaUseCase struct {
	api   inventory.ServicioInventario
	ttl   time.Duration
	ahora func() time.Time

	mu    sync.Mutex
	cache map[string]entradaCampana // clave: id de sesión
}

type entradaCampana struct {
	alertas    []dto.AlertaCampanaDTO
	refrescada time.Time
}

// NewCampanaUseCase construye el caso de uso.
func NewCampanaUseCase(api inventory.ServicioInventario, ttl time.Duration) *CampanaUseCase {
	return &CampanaUseCase{
		api:   api,
		ttl:   ttl,
		ahora: time.Now,
		cache: make(map[string]entradaCampana),
	}
}

// Alertas devuelve las notificaciones de caducidad de la sesión. Usa la
// caché mientras no haya expirado el TTL, salvo que forzar sea true.
func (uc *CampanaUseCase) Alertas(ctx context.Context, sesion *entity.Sesion, forzar bool) ([]dto.AlertaCampanaDTO, error) {
	if sesion == nil {
		return nil, domain.ErrNoAutenticado
	}

	uc.mu.Lock()
	entrada, ok := uc.cache[sesion.ID]
	uc.mu.Unlock()
	if ok && !forzar && uc.ahora().Sub(entrada.refrescada) < uc.ttl {
		return entrada.alertas, nil
	}

	remotas, err := uc.api.ObtenerAlertas(ctx, sesion.Token)
	if err != nil {
		return nil, err
	}
	metrics.RefrescosCampana.Inc()

	hoy := uc.ahora()
	combinadas := make([]dto.AlertaCampanaDTO, 0, len(remotas.AlertaRoja)+len(remotas.AlertaAmarilla))
	for _, p := range remotas.AlertaRoja {
		combinadas = append(combinadas, uc.clasificar(p, hoy))
	}
	for _, p := range remotas.AlertaAmarilla {
		combinadas = append(combinadas, uc.clasificar(p, hoy))
	}

	// La más próxima a caducar primero; sin fecha al final.
	sort.SliceStable(combinadas, func(i, j int) bool {
		if combinadas[i].FechaCaducidad == "" {
			return false
		}
		if combinadas[j].FechaCaducidad == "" {
			return true
		}
		return combinadas[i].FechaCaducidad < combinadas[j].FechaCaducidad
	})

	uc.mu.Lock()
	uc.cache[sesion.ID] = entradaCampana{alertas: combinadas, refrescada: uc.ahora()}
	uc.mu.Unlock()

	return combinadas, nil
}

// clasificar asigna el nivel visual de la campana a un producto alertado.
func (uc *CampanaUseCase) clasificar(p dto.ProductoDTO, hoy time.Time) dto.AlertaCampanaDTO {
	a := dto.AlertaCampanaDTO{
		ProductoID: p.ID,
		Nombre:     p.Nombre,
		Tipo:       "alerta_amarilla",
	}
	if p.FechaCaducidad == nil {
		return a
	}
	a.FechaCaducidad = *p.FechaCaducidad
	fecha, err := time.Parse("2006-01-02", *p.FechaCaducidad)
	if err != nil {
		return a
	}
	dias := alerts.DiasHastaCaducidad(fecha, hoy)
	a.DiasRestantes = dias
	if dias <= alerts.UmbralRojoDias {
		a.Tipo = "alerta_roja"
	}
	if dias <= 0 {
		a.Vencida = true
	}
	return a
}

// Invalidar descarta la caché de una sesión (logout o sesión expirada).
func (uc *CampanaUseCase) Invalidar(sesionID string) {
	uc.mu.Lock()
	delete(uc.cache, sesionID)
	uc.mu.Unlock()
}

// IniciarJanitor purga periódicamente las entradas caducadas de la caché.
// Bloquea hasta que se cancele ctx; se lanza en una goroutine propia y el
// shutdown del proceso la detiene (el temporizador no sobrevive al cierre).
func (uc *CampanaUseCase) IniciarJanitor(ctx context.Context) {
	ticker := time.NewTicker(uc.ttl)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			limite := uc.ahora().Add(-uc.ttl)
			uc.mu.Lock()
			for id, entrada := range uc.cache {
				if entrada.refrescada.Before(limite) {
					delete(uc.cache, id)
				}
			}
			uc.mu.Unlock()
		}
	}
}
