// Package kml loads the race course from a Google My Maps KML or KMZ export.
// The export splits the course into several LineString segments; they are
// merged by name order into one polyline with cumulative distances.
package kml

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/louwian/medoc-marathon/internal/domain"
	"github.com/louwian/medoc-marathon/internal/spatial"
)

// connectThresholdKm: segment ends closer than this are treated as one
// continuous line and the duplicate junction vertex is dropped.
const connectThresholdKm = 0.1

type kmlFile struct {
	Document kmlDocument `xml:"Document"`
}

type kmlDocument struct {
	Folders    []kmlFolder    `xml:"Folder"`
	Placemarks []kmlPlacemark `xml:"Placemark"`
}

type kmlFolder struct {
	Placemarks []kmlPlacemark `xml:"Placemark"`
}

type kmlPlacemark struct {
	Name       string       `xml:"name"`
	LineString *kmlGeometry `xml:"LineString"`
	Point      *kmlGeometry `xml:"Point"`
}

type kmlGeometry struct {
	Coordinates string `xml:"coordinates"`
}

// Segment is one named LineString from the export.
type Segment struct {
	Name   string
	Coords []domain.Coordinates
}

// NamedPoint is a Point placemark (a pinned stop or landmark).
type NamedPoint struct {
	Name   string
	Coords domain.Coordinates
}

// Document holds the parsed pieces of a course export.
type Document struct {
	Segments []Segment
	Points   []NamedPoint
}

// ParseFile reads a .kml or .kmz file.
func ParseFile(path string) (*Document, error) {
	var raw []byte
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".kmz":
		raw, err = extractKMZ(path)
	case ".kml":
		raw, err = os.ReadFile(path)
	default:
		return nil, fmt.Errorf("parse kml: %q must be a .kml or .kmz file", path)
	}
	if err != nil {
		return nil, fmt.Errorf("parse kml: read %q: %w", path, err)
	}

	return Parse(raw)
}

// Parse decodes KML content into segments and points.
func Parse(raw []byte) (*Document, error) {
	var file kmlFile
	if err := xml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse kml: decode xml: %w", err)
	}

	placemarks := append([]kmlPlacemark{}, file.Document.Placemarks...)
	for _, f := range file.Document.Folders {
		placemarks = append(placemarks, f.Placemarks...)
	}

	doc := &Document{}
	for _, pm := range placemarks {
		name := strings.TrimSpace(pm.Name)
		if name == "" {
			name = "Unknown"
		}

		if pm.LineString != nil {
			coords, err := parseCoordinates(pm.LineString.Coordinates)
			if err != nil {
				return nil, fmt.Errorf("parse kml: segment %q: %w", name, err)
			}
			doc.Segments = append(doc.Segments, Segment{Name: name, Coords: coords})
		}

		if pm.Point != nil {
			coords, err := parseCoordinates(pm.Point.Coordinates)
			if err != nil {
				return nil, fmt.Errorf("parse kml: point %q: %w", name, err)
			}
			if len(coords) == 0 {
				continue
			}
			// Country-level anchor pins carry "France" in the name; they are
			// map decoration, not stops.
			if strings.Contains(name, "France") {
				continue
			}
			doc.Points = append(doc.Points, NamedPoint{Name: name, Coords: coords[0]})
		}
	}

	if len(doc.Segments) == 0 {
		return nil, fmt.Errorf("parse kml: no LineString segments found")
	}
	return doc, nil
}

// Course merges the segments into a single polyline and returns it as a
// validated course with cumulative distances.
func (d *Document) Course() (*domain.Course, error) {
	segments := make([]Segment, len(d.Segments))
	copy(segments, d.Segments)
	// Export names carry the part order ("part 1", "part 2", ...).
	sort.SliceStable(segments, func(a, b int) bool { return segments[a].Name < segments[b].Name })

	var merged []domain.Coordinates
	for i, seg := range segments {
		if i == 0 || len(merged) == 0 {
			merged = append(merged, seg.Coords...)
			continue
		}
		if len(seg.Coords) == 0 {
			continue
		}

		gapKm := spatial.DistanceKm(merged[len(merged)-1], seg.Coords[0])
		if gapKm < connectThresholdKm {
			merged = append(merged, seg.Coords[1:]...)
		} else {
			// Disconnected parts are joined by an implicit straight line.
			merged = append(merged, seg.Coords...)
		}
	}

	return domain.NewCourse(spatial.CumulativePoints(merged))
}

func extractKMZ(path string) ([]byte, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open kmz archive: %w", err)
	}
	defer zr.Close()

	var main *zip.File
	for _, f := range zr.File {
		if !strings.HasSuffix(strings.ToLower(f.Name), ".kml") {
			continue
		}
		// doc.kml is the conventional main document; otherwise first wins.
		if f.Name == "doc.kml" {
			main = f
			break
		}
		if main == nil {
			main = f
		}
	}
	if main == nil {
		return nil, fmt.Errorf("no kml file found in kmz archive")
	}

	rc, err := main.Open()
	if err != nil {
		return nil, fmt.Errorf("open %q in kmz: %w", main.Name, err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %q in kmz: %w", main.Name, err)
	}
	return raw, nil
}

// parseCoordinates decodes the KML "lon,lat[,alt]" whitespace-separated list.
func parseCoordinates(s string) ([]domain.Coordinates, error) {
	fields := strings.Fields(s)
	coords := make([]domain.Coordinates, 0, len(fields))
	for _, field := range fields {
		parts := strings.Split(field, ",")
		if len(parts) < 2 {
			continue
		}
		lon, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, fmt.Errorf("bad longitude %q: %w", parts[0], err)
		}
		lat, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("bad latitude %q: %w", parts[1], err)
		}
		coords = append(coords, domain.Coordinates{Lon: lon, Lat: lat})
	}
	return coords, nil
}
