package sessionstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-web/internal/domain/entity"
	"github.com/jhoicas/inventario-web/internal/infrastructure/sessionstore"
)

func nuevoStore(t *testing.T) *sessionstore.Store {
	t.Helper()
	store, err := sessionstore.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sesionDePrueba(id string, expiraEn time.Time) *entity.Sesion {
	return &entity.Sesion{
		ID:    id,
		Token: "jwt-" + id,
		Usuario: entity.Usuario{
			ID:           7,
			UsuarioLogin: "ana",
			Nombre:       "Ana López",
			Rol:          entity.RolAdmin,
		},
		CreadaEn: time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC),
		ExpiraEn: expiraEn,
	}
}

func TestGuardarYObtener(t *testing.T) {
	store := nuevoStore(t)
	ctx := context.Background()
	expira := time.Date(2026, time.March, 11, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.Guardar(ctx, sesionDePrueba("ses-1", expira)))

	sesion, err := store.Obtener(ctx, "ses-1")
	require.NoError(t, err)
	require.NotNil(t, sesion)
	assert.Equal(t, "jwt-ses-1", sesion.Token)
	assert.Equal(t, "Ana López", sesion.Usuario.Nombre)
	assert.True(t, sesion.Usuario.EsAdmin())
	assert.Equal(t, expira.Unix(), sesion.ExpiraEn.Unix())
}

func TestObtener_Inexistente(t *testing.T) {
	store := nuevoStore(t)

	sesion, err := store.Obtener(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.Nil(t, sesion, "una sesión ausente no es un error")
}

func TestGuardar_ReemplazaLaSesionExistente(t *testing.T) {
	store := nuevoStore(t)
	ctx := context.Background()
	expira := time.Now().Add(time.Hour)

	require.NoError(t, store.Guardar(ctx, sesionDePrueba("ses-1", expira)))

	actualizada := sesionDePrueba("ses-1", expira)
	actualizada.Token = "jwt-renovado"
	require.NoError(t, store.Guardar(ctx, actualizada))

	sesion, err := store.Obtener(ctx, "ses-1")
	require.NoError(t, err)
	assert.Equal(t, "jwt-renovado", sesion.Token)
}

func TestEliminar(t *testing.T) {
	store := nuevoStore(t)
	ctx := context.Background()

	require.NoError(t, store.Guardar(ctx, sesionDePrueba("ses-1", time.Now().Add(time.Hour))))
	require.NoError(t, store.Eliminar(ctx, "ses-1"))

	sesion, err := store.Obtener(ctx, "ses-1")
	require.NoError(t, err)
	assert.Nil(t, sesion)

	// Borrar lo que no existe tampoco es un error.
	assert.NoError(t, store.Eliminar(ctx, "ses-1"))
}

func TestEliminarExpiradas(t *testing.T) {
	store := nuevoStore(t)
	ctx := context.Background()
	ahora := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.Guardar(ctx, sesionDePrueba("viva", ahora.Add(time.Hour))))
	require.NoError(t, store.Guardar(ctx, sesionDePrueba("muerta", ahora.Add(-time.Minute))))
	require.NoError(t, store.Guardar(ctx, sesionDePrueba("justa", ahora)))

	n, err := store.EliminarExpiradas(ctx, ahora)
	require.NoError(t, err)
	// expira_en <= ahora elimina tanto la vencida como la que expira en
	// este mismo instante.
	assert.Equal(t, int64(2), n)

	sesion, err := store.Obtener(ctx, "viva")
	require.NoError(t, err)
	assert.NotNil(t, sesion)
}
