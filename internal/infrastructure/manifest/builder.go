// Package manifest genera el manifiesto XML de carga de un contenedor y su huella SHA-256
// calculada sobre la forma canónica (C14N) del documento.
package manifest

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	"github.com/jhoicas/freight-api/internal/application/ports"
	"github.com/jhoicas/freight-api/internal/domain/entity"
)

// Namespace del documento de manifiesto.
const Namespace = "urn:freight-api:manifest:1"

var _ ports.ManifestBuilder = (*Builder)(nil)

// Builder construye manifiestos con etree.
type Builder struct{}

// NewBuilder crea el servicio.
func NewBuilder() *Builder { return &Builder{} }

// BuildManifest devuelve el XML (con declaración) y el SHA-256 hex de su forma canónica.
func (b *Builder) BuildManifest(container entity.Container, shipments []entity.Shipment) ([]byte, string, error) {
	doc := etree.NewDocument()
	root := doc.CreateElement("ContainerManifest")
	root.CreateAttr("xmlns", Namespace)
	root.CreateAttr("containerId", container.ContainerID)

	header := root.CreateElement("Container")
	addText(header, "Destination", container.Destination)
	addText(header, "ContainerType", container.ContainerType)
	addText(header, "CapacityKg", formatKg(container.CapacityKg))
	addText(header, "UsedKg", formatKg(container.UsedKg))
	addText(header, "RemainingKg", formatKg(container.RemainingKg))
	addText(header, "DistanceKm", formatKg(container.DistanceKm))
	addText(header, "TransportCost", container.TransportCost.StringFixed(2))
	addText(header, "Status", string(container.Status))
	if !container.CreatedAt.IsZero() {
		addText(header, "CreatedAt", container.CreatedAt.UTC().Format(time.RFC3339))
	}

	lines := root.CreateElement("Lines")
	lines.CreateAttr("count", strconv.Itoa(len(shipments)))
	total := 0.0
	for i, s := range shipments {
		line := lines.CreateElement("Line")
		line.CreateAttr("seq", strconv.Itoa(i+1))
		line.CreateAttr("shipmentId", s.ShipmentID)
		addText(line, "ProductName", s.ProductName)
		addText(line, "ProductCategory", s.ProductCategory)
		addText(line, "WeightKg", formatKg(s.WeightKg.Float64()))
		addText(line, "Price", s.Price.StringFixed(2))
		addText(line, "Status", string(s.Status))
		total += s.WeightKg.Float64()
	}
	addText(root, "TotalWeightKg", formatKg(total))

	doc.Indent(2)
	body, err := doc.WriteToBytes()
	if err != nil {
		return nil, "", fmt.Errorf("manifiesto: serializar: %w", err)
	}
	digest, err := Digest(body)
	if err != nil {
		return nil, "", err
	}
	return append([]byte(xml.Header), body...), digest, nil
}

// Digest SHA-256 hex de la forma canónica del documento. Documentos que difieren solo en el
// orden de atributos o en la forma de cerrar elementos vacíos producen la misma huella.
func Digest(doc []byte) (string, error) {
	canonical, err := canonicalize(doc)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

func canonicalize(data []byte) ([]byte, error) {
	// la declaración XML no forma parte de la forma canónica
	data = bytes.TrimPrefix(bytes.TrimSpace(data), []byte(xml.Header[:len(xml.Header)-1]))
	data = bytes.TrimSpace(data)
	// c14n no verifica que las etiquetas de cierre correspondan; etree sí
	if err := etree.NewDocument().ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("manifiesto: XML mal formado: %w", err)
	}
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	out, err := c14n.Canonicalize(dec)
	if err != nil {
		return nil, fmt.Errorf("manifiesto: canonicalizar: %w", err)
	}
	return out, nil
}

func addText(parent *etree.Element, tag, value string) {
	parent.CreateElement(tag).SetText(value)
}

func formatKg(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
