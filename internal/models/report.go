package models

import (
	"database/sql"
	"time"
)

type Category string

const (
	CategoryEmergencia       Category = "EMERGENCIA"
	CategoryApoyoAdultoMayor Category = "APOYO_ADULTO_MAYOR"
	CategoryBullying         Category = "BULLYING"
	CategoryClima            Category = "CLIMA"
	CategoryOtro             Category = "OTRO"
)

var AvailableCategories = []Category{
	CategoryEmergencia,
	CategoryApoyoAdultoMayor,
	CategoryBullying,
	CategoryClima,
	CategoryOtro,
}

func (c Category) Valid() bool {
	for _, v := range AvailableCategories {
		if c == v {
			return true
		}
	}
	return false
}

type Report struct {
	ID          int
	CreatedAt   time.Time `db:"created_at"`
	Categoria   Category
	Descripcion string
	Direccion   string
	Lat         sql.NullFloat64
	Lng         sql.NullFloat64
	Telefono    string
	Anonimo     bool
	ImagenPath  sql.NullString `db:"imagen_path"`
}

// HasValidCoords reports whether both coordinates are present and inside
// the WGS84 range. Reports failing this are persisted but never fed to
// the map.
func (r *Report) HasValidCoords() bool {
	if !r.Lat.Valid || !r.Lng.Valid {
		return false
	}
	return r.Lat.Float64 >= -90 && r.Lat.Float64 <= 90 &&
		r.Lng.Float64 >= -180 && r.Lng.Float64 <= 180
}

// AlertView is the projection of a report served to the map client.
type AlertView struct {
	Categoria   Category `json:"categoria"`
	Descripcion string   `json:"descripcion"`
	Direccion   string   `json:"direccion"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
}
