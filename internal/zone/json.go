package zone

import (
	"encoding/json"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// jsonZone is the wire shape of a Zone (spec §6, one JSON object per line in
// NDJSON output). Geometry travels as GeoJSON, matching §6's "Zone JSON
// fields match §3" requirement literally: geometry and center are GeoJSON
// objects, bbox is an RFC 7946 [minx, miny, maxx, maxy] array.
type jsonZone struct {
	ID                  int               `json:"id"`
	OsmID               string            `json:"osm_id"`
	AdminLevel          *int              `json:"admin_level,omitempty"`
	ZoneType            *string           `json:"zone_type"`
	Name                string            `json:"name"`
	Label               string            `json:"label"`
	InternationalLabels map[string]string `json:"international_labels,omitempty"`
	Tags                map[string]string `json:"tags,omitempty"`
	CenterTags          map[string]string `json:"center_tags,omitempty"`
	ZipCodes            []string          `json:"zip_codes,omitempty"`
	Center              *geojson.Geometry `json:"center,omitempty"`
	Geometry            *geojson.Geometry `json:"geometry,omitempty"`
	BBox                []float64         `json:"bbox,omitempty"`
	Parent              *int              `json:"parent,omitempty"`
	Wikidata            *string           `json:"wikidata,omitempty"`
	CountryCode         *string           `json:"country_code,omitempty"`
	IsGenerated         bool              `json:"is_generated"`
}

// MarshalJSON implements the wire format described above.
func (z *Zone) MarshalJSON() ([]byte, error) {
	jz := jsonZone{
		ID:                  int(z.ID),
		OsmID:               z.OsmID,
		AdminLevel:          z.AdminLevel,
		Name:                z.Name,
		Label:               z.Label,
		InternationalLabels: z.InternationalLabels,
		Tags:                z.Tags,
		CenterTags:          z.CenterTags,
		ZipCodes:            z.ZipCodes,
		Wikidata:            z.Wikidata,
		CountryCode:         z.CountryCode,
		IsGenerated:         z.IsGenerated,
	}
	if z.ZoneType != nil {
		s := z.ZoneType.String()
		jz.ZoneType = &s
	}
	if z.Center != nil {
		jz.Center = geojson.NewGeometry(orb.Geometry(*z.Center))
	}
	if len(z.Boundary) > 0 {
		jz.Geometry = geojson.NewGeometry(orb.Geometry(z.Boundary))
	}
	if z.BBox != nil {
		b := *z.BBox
		jz.BBox = []float64{b.Min[0], b.Min[1], b.Max[0], b.Max[1]}
	}
	if z.Parent != nil {
		p := int(*z.Parent)
		jz.Parent = &p
	}
	return json.Marshal(jz)
}

// UnmarshalJSON parses the wire format produced by MarshalJSON, used by the
// merger when reading back previously generated cosmogony files.
func (z *Zone) UnmarshalJSON(data []byte) error {
	var jz jsonZone
	if err := json.Unmarshal(data, &jz); err != nil {
		return err
	}
	*z = *NewZone()
	z.ID = Index(jz.ID)
	z.OsmID = jz.OsmID
	z.AdminLevel = jz.AdminLevel
	z.Name = jz.Name
	z.Label = jz.Label
	if jz.InternationalLabels != nil {
		z.InternationalLabels = jz.InternationalLabels
	}
	if jz.Tags != nil {
		z.Tags = jz.Tags
	}
	if jz.CenterTags != nil {
		z.CenterTags = jz.CenterTags
	}
	z.ZipCodes = jz.ZipCodes
	z.Wikidata = jz.Wikidata
	z.CountryCode = jz.CountryCode
	z.IsGenerated = jz.IsGenerated

	if jz.ZoneType != nil {
		if t, ok := ParseType(*jz.ZoneType); ok {
			z.ZoneType = &t
		}
	}
	if jz.Center != nil {
		if p, ok := jz.Center.Geometry.(orb.Point); ok {
			z.Center = &p
		}
	}
	if jz.Geometry != nil {
		switch v := jz.Geometry.Geometry.(type) {
		case orb.MultiPolygon:
			z.Boundary = v
		case orb.Polygon:
			z.Boundary = orb.MultiPolygon{v}
		}
	}
	if len(jz.BBox) == 4 {
		b := orb.Bound{Min: orb.Point{jz.BBox[0], jz.BBox[1]}, Max: orb.Point{jz.BBox[2], jz.BBox[3]}}
		z.BBox = &b
	}
	if jz.Parent != nil {
		p := Index(*jz.Parent)
		z.Parent = &p
	}
	return nil
}
