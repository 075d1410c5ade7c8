package dto

import (
	"time"

	"github.com/jhoicas/inventario-web/internal/domain/entity"
)

// DesdeProducto convierte la entidad de dominio a su DTO de respuesta.
func DesdeProducto(p entity.Producto) ProductoDTO {
	return ProductoDTO{
		ID:             p.ID,
		Nombre:         p.Nombre,
		Cantidad:       p.Cantidad,
		FechaCaducidad: p.FechaCaducidadSQL(),
		Ubicacion:      p.Ubicacion,
		PrecioCosto:    p.PrecioCosto,
		PrecioVenta:    p.PrecioVenta,
		FechaIngreso:   formatearFecha(p.FechaIngreso),
	}
}

// DesdeProductos convierte una lista completa.
func DesdeProductos(ps []entity.Producto) []ProductoDTO {
	out := make([]ProductoDTO, 0, len(ps))
	for _, p := range ps {
		out = append(out, DesdeProducto(p))
	}
	return out
}

// DesdeMovimiento convierte la entidad de dominio a su DTO de respuesta.
func DesdeMovimiento(m entity.Movimiento) MovimientoDTO {
	return MovimientoDTO{
		ID:             m.ID,
		ProductoID:     m.ProductoID,
		Tipo:           m.Tipo,
		Cantidad:       m.Cantidad,
		UsuarioID:      m.UsuarioID,
		Fecha:          m.Fecha.Format(time.RFC3339),
		NombreProducto: m.NombreProducto,
		NombreUsuario:  m.NombreUsuario,
	}
}

// DesdeUsuario convierte el usuario de la sesión a su DTO.
func DesdeUsuario(u entity.Usuario) UsuarioDTO {
	return UsuarioDTO{
		ID:           u.ID,
		UsuarioLogin: u.UsuarioLogin,
		Nombre:       u.Nombre,
		Rol:          u.Rol,
		EsAdmin:      u.EsAdmin(),
	}
}

func formatearFecha(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
