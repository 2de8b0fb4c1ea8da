package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// SRIDWGS84 is the spatial reference used for building coordinates.
const SRIDWGS84 = 4326

// Point is a PostGIS Point geometry stored as GeoJSON coordinates [lon, lat].
type Point struct {
	Coordinates [2]float64
	SRID        int
}

type geoJSONPoint struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// NewPoint builds a WGS84 point from latitude and longitude.
func NewPoint(lat, lng float64) Point {
	return Point{Coordinates: [2]float64{lng, lat}, SRID: SRIDWGS84}
}

// Lat returns the latitude.
func (p Point) Lat() float64 { return p.Coordinates[1] }

// Lng returns the longitude.
func (p Point) Lng() float64 { return p.Coordinates[0] }

// Scan implements sql.Scanner for values selected with ST_AsGeoJSON.
func (p *Point) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("failed to scan Point: expected []byte or string, got %T", value)
	}

	var geom geoJSONPoint
	if err := json.Unmarshal(raw, &geom); err != nil {
		return fmt.Errorf("failed to unmarshal point geometry: %w", err)
	}
	if geom.Type != "Point" {
		return fmt.Errorf("expected Point type, got %s", geom.Type)
	}

	p.Coordinates = geom.Coordinates
	p.SRID = SRIDWGS84
	return nil
}

// Value implements driver.Valuer. The GeoJSON text is meant for ST_GeomFromGeoJSON.
func (p Point) Value() (driver.Value, error) {
	if p.SRID == 0 {
		return nil, nil
	}
	geoJSON, err := json.Marshal(geoJSONPoint{Type: "Point", Coordinates: p.Coordinates})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal point to GeoJSON: %w", err)
	}
	return string(geoJSON), nil
}

// MarshalJSON renders the point as a GeoJSON geometry.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(geoJSONPoint{Type: "Point", Coordinates: p.Coordinates})
}

// UnmarshalJSON parses a GeoJSON Point geometry.
func (p *Point) UnmarshalJSON(data []byte) error {
	var geom geoJSONPoint
	if err := json.Unmarshal(data, &geom); err != nil {
		return fmt.Errorf("failed to unmarshal point: %w", err)
	}
	if geom.Type != "" && geom.Type != "Point" {
		return fmt.Errorf("expected Point type, got %s", geom.Type)
	}
	p.Coordinates = geom.Coordinates
	p.SRID = SRIDWGS84
	return nil
}
