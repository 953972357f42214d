package location

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=location_repo.go -destination=mock/location_repo_mock.go -package=mock
type Repository interface {
	FindRadiusByRole(ctx context.Context, roleID string) ([]MasterLokasiAbsen, error)
	FindActive(ctx context.Context) ([]PersLokasi, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindRadiusByRole mengambil titik absen dari mapping role pertama.
func (r *repository) FindRadiusByRole(ctx context.Context, roleID string) ([]MasterLokasiAbsen, error) {
	var maps []RoleLocationMap
	err := r.db.WithContext(ctx).
		Preload("Locations", func(db *gorm.DB) *gorm.DB {
			return db.Select("id_role", "tikor", "nama_lokasi", "radius")
		}).
		Where("id_role = ?", roleID).
		Limit(1).
		Find(&maps).Error
	if err != nil {
		return nil, err
	}
	if len(maps) == 0 {
		return nil, nil
	}
	return maps[0].Locations, nil
}

func (r *repository) FindActive(ctx context.Context) ([]PersLokasi, error) {
	var rows []PersLokasi
	err := r.db.WithContext(ctx).
		Select("kode", "lokasi", "aktif", "no_urut").
		Where("aktif = ?", 1).
		Order("no_urut ASC").
		Find(&rows).Error
	return rows, err
}
