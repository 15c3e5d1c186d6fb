// Package kml exporta la capa del mapa a KML 2.2 (Google Earth, QGIS).
package kml

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	"github.com/jhoicas/bharat-chakra/internal/application/dto"
	"github.com/jhoicas/bharat-chakra/internal/application/ports"
)

// NamespaceKML espacio de nombres de KML 2.2.
const NamespaceKML = "http://www.opengis.net/kml/2.2"

// Colores KML en formato aabbggrr; relleno semitransparente.
var fillColors = map[string]string{
	"green": "9900ff00",
	"red":   "990000ff",
}

const lineColor = "ff000000"

// Asegura que Exporter implementa ports.MapExporter.
var _ ports.MapExporter = (*Exporter)(nil)

// Exporter construye el documento con etree y calcula su digest sobre la forma canónica (C14N).
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// ExportLayer devuelve el KML y el SHA-256 (hex) de su forma canónica.
func (e *Exporter) ExportLayer(ctx context.Context, title string, layer dto.FeatureCollectionDTO) ([]byte, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	root := buildDocument(title, layer)

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.SetRoot(root)
	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, "", fmt.Errorf("kml: serializar: %w", err)
	}

	digest, err := digestOf(root)
	if err != nil {
		return nil, "", err
	}
	return out, digest, nil
}

func buildDocument(title string, layer dto.FeatureCollectionDTO) *etree.Element {
	root := etree.NewElement("kml")
	root.CreateAttr("xmlns", NamespaceKML)
	document := root.CreateElement("Document")
	document.CreateElement("name").SetText(title)

	for _, name := range []string{"green", "red"} {
		style := document.CreateElement("Style")
		style.CreateAttr("id", name)
		ls := style.CreateElement("LineStyle")
		ls.CreateElement("color").SetText(lineColor)
		ls.CreateElement("width").SetText("1")
		ps := style.CreateElement("PolyStyle")
		ps.CreateElement("color").SetText(fillColors[name])
	}

	for _, f := range layer.Features {
		pm := document.CreateElement("Placemark")
		pm.CreateElement("name").SetText(f.Properties.PC)
		pm.CreateElement("description").SetText(fmt.Sprintf("%s, KPI %s", f.Properties.Name, f.Properties.KPI.String()))
		style := f.Properties.Style.FillColor
		if _, ok := fillColors[style]; !ok {
			style = "red"
		}
		pm.CreateElement("styleUrl").SetText("#" + style)

		data := pm.CreateElement("ExtendedData")
		addData(data, "state", f.Properties.Name)
		addData(data, "kpi", f.Properties.KPI.String())

		polygon := pm.CreateElement("Polygon")
		for i, ring := range f.Geometry.Coordinates {
			tag := "innerBoundaryIs"
			if i == 0 {
				tag = "outerBoundaryIs"
			}
			polygon.CreateElement(tag).
				CreateElement("LinearRing").
				CreateElement("coordinates").SetText(formatRing(ring))
		}
	}
	return root
}

func addData(parent *etree.Element, name, value string) {
	d := parent.CreateElement("Data")
	d.CreateAttr("name", name)
	d.CreateElement("value").SetText(value)
}

// formatRing "lon,lat lon,lat ..." como exige KML.
func formatRing(ring [][2]float64) string {
	parts := make([]string, 0, len(ring))
	for _, p := range ring {
		parts = append(parts,
			strconv.FormatFloat(p[0], 'f', -1, 64)+","+strconv.FormatFloat(p[1], 'f', -1, 64))
	}
	return strings.Join(parts, " ")
}

// digestOf serializa solo la raíz (sin declaración XML ni sangría) y la canoniza antes del hash.
func digestOf(root *etree.Element) (string, error) {
	raw, err := etree.NewDocumentWithRoot(root.Copy()).WriteToBytes()
	if err != nil {
		return "", fmt.Errorf("kml: serializar raíz: %w", err)
	}
	canon, err := canonicalizeXML(raw)
	if err != nil {
		return "", fmt.Errorf("kml: canonizar: %w", err)
	}
	sum := sha256.Sum256(canon)
	return hex.EncodeToString(sum[:]), nil
}

func canonicalizeXML(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	return c14n.Canonicalize(dec)
}
