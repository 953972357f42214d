package location_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riooastfu/pastimobile-be/internal/location"
	locationerrors "github.com/riooastfu/pastimobile-be/internal/location/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

type fakeLocationService struct {
	GetRadiusByRoleFn func(ctx context.Context, roleID string) ([]location.RadiusResponse, error)
	ListActiveFn      func(ctx context.Context) ([]location.LocationResponse, error)
}

func (f *fakeLocationService) GetRadiusByRole(ctx context.Context, roleID string) ([]location.RadiusResponse, error) {
	return f.GetRadiusByRoleFn(ctx, roleID)
}
func (f *fakeLocationService) ListActive(ctx context.Context) ([]location.LocationResponse, error) {
	return f.ListActiveFn(ctx)
}

func TestLocationHandler_GetRadius(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("role from auth context", func(t *testing.T) {
		svc := &fakeLocationService{
			GetRadiusByRoleFn: func(ctx context.Context, roleID string) ([]location.RadiusResponse, error) {
				assert.Equal(t, "7", roleID)
				return []location.RadiusResponse{{Tikor: "-6.2,106.8", NamaLokasi: "Kantor Pusat", Radius: 150}}, nil
			},
		}
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/locations/radius", nil)
		c.Set("id_role", "7")

		location.NewHandler(svc).GetRadius(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
		assert.JSONEq(t, `[{"tikor":"-6.2,106.8","nama_lokasi":"Kantor Pusat","radius":150}]`, string(env.Data))
	})

	t.Run("missing role is 401", func(t *testing.T) {
		svc := &fakeLocationService{
			GetRadiusByRoleFn: func(ctx context.Context, roleID string) ([]location.RadiusResponse, error) {
				return nil, locationerrors.ErrRoleMissing
			},
		}
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/locations/radius", nil)

		location.NewHandler(svc).GetRadius(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, "UNAUTHENTICATED_OR_ROLE_MISSING", env.Error.Code)
	})
}

func TestLocationHandler_ListActive(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeLocationService{
		ListActiveFn: func(ctx context.Context) ([]location.LocationResponse, error) {
			return []location.LocationResponse{{Kode: "JKT01", Lokasi: "Jakarta"}}, nil
		},
	}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/locations", nil)

	location.NewHandler(svc).ListActive(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
