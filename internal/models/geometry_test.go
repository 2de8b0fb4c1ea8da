package models

import (
	"database/sql/driver"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointImplementsInterfaces(t *testing.T) {
	var _ driver.Valuer = Point{}
	var p Point
	var scanner interface{} = &p
	_, ok := scanner.(interface{ Scan(interface{}) error })
	assert.True(t, ok, "Point should implement sql.Scanner")
}

func TestNewPoint(t *testing.T) {
	p := NewPoint(48.85, 2.35)

	assert.Equal(t, [2]float64{2.35, 48.85}, p.Coordinates, "GeoJSON order is lon, lat")
	assert.Equal(t, 48.85, p.Lat())
	assert.Equal(t, 2.35, p.Lng())
	assert.Equal(t, SRIDWGS84, p.SRID)
}

func TestPointValue(t *testing.T) {
	t.Run("valid point", func(t *testing.T) {
		val, err := NewPoint(48.85, 2.35).Value()
		require.NoError(t, err)

		var geom map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(val.(string)), &geom))
		assert.Equal(t, "Point", geom["type"])
	})

	t.Run("zero point is NULL", func(t *testing.T) {
		val, err := Point{}.Value()
		require.NoError(t, err)
		assert.Nil(t, val)
	})
}

func TestPointScan(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		want    [2]float64
		wantErr bool
	}{
		{"bytes", []byte(`{"type":"Point","coordinates":[2.35,48.85]}`), [2]float64{2.35, 48.85}, false},
		{"string", `{"type":"Point","coordinates":[-1.5,43.4]}`, [2]float64{-1.5, 43.4}, false},
		{"wrong geometry", []byte(`{"type":"Polygon","coordinates":[]}`), [2]float64{}, true},
		{"bad json", []byte(`{`), [2]float64{}, true},
		{"wrong type", 42, [2]float64{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Point
			err := p.Scan(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Coordinates)
		})
	}

	t.Run("nil leaves point empty", func(t *testing.T) {
		var p Point
		require.NoError(t, p.Scan(nil))
		assert.Zero(t, p.SRID)
	})
}

func TestPointJSON(t *testing.T) {
	data, err := json.Marshal(NewPoint(48.85, 2.35))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Point","coordinates":[2.35,48.85]}`, string(data))

	var p Point
	require.NoError(t, json.Unmarshal(data, &p))
	assert.Equal(t, 48.85, p.Lat())

	assert.Error(t, json.Unmarshal([]byte(`{"type":"LineString","coordinates":[0,0]}`), &p))
}

func TestBuildingLocation(t *testing.T) {
	lat, lng := 48.85, 2.35

	_, ok := Building{Latitude: &lat}.Location()
	assert.False(t, ok, "a single coordinate is not a location")

	p, ok := Building{Latitude: &lat, Longitude: &lng}.Location()
	require.True(t, ok)
	assert.Equal(t, lng, p.Lng())
}

func TestEnumsKnown(t *testing.T) {
	assert.True(t, StateDegraded.Known())
	assert.False(t, ObservedState("Crumbling").Known())
	assert.True(t, StateRuined.Urgent())
	assert.False(t, StateAverage.Urgent())

	assert.True(t, WorkInProgress.Known())
	assert.Equal(t, "In progress", WorkInProgress.Label())
	assert.Equal(t, "Done", WorkDone.Label())
	assert.False(t, WorkStatus("Paused").Known())

	assert.True(t, DocPDF.Known())
	assert.False(t, DocumentType("Audio").Known())
}

func TestInterventionIsValidated(t *testing.T) {
	yes, no := true, false
	assert.True(t, Intervention{Validated: &yes}.IsValidated())
	assert.False(t, Intervention{Validated: &no}.IsValidated())
	assert.False(t, Intervention{}.IsValidated())
}
