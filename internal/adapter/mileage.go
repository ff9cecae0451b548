package adapter

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
)

// MilesPerKilometer converts kilometers to miles.
const MilesPerKilometer = 0.621371

var ErrInvalidMileage = errors.New("invalid mileage document")

// MileageReporter reports a mileage in miles as {"mileage": <miles>}.
type MileageReporter interface {
	MileageJSON() (string, error)
}

// KilometerXMLReporter reports a mileage in kilometers as
// <xml><mileage>km</mileage></xml>.
type KilometerXMLReporter interface {
	MileageXML() (string, error)
}

type mileageJSON struct {
	Mileage float64 `json:"mileage"`
}

type mileageXML struct {
	XMLName xml.Name `xml:"xml"`
	Mileage float64  `xml:"mileage"`
}

// Car natively reports miles in JSON.
type Car struct {
	Miles float64
}

func (c *Car) MileageJSON() (string, error) {
	return encodeMiles(c.Miles)
}

// Bicycle only knows how to report kilometers in XML.
type Bicycle struct {
	Kilometers float64
}

func (b *Bicycle) MileageXML() (string, error) {
	v, err := xml.Marshal(mileageXML{Mileage: b.Kilometers})
	if err != nil {
		return "", fmt.Errorf("failed to encode mileage: %w", err)
	}
	return string(v), nil
}

// BicycleAdapter lets a KilometerXMLReporter be used where a
// MileageReporter is expected. The adapted value is unaware of it.
type BicycleAdapter struct {
	bicycle KilometerXMLReporter
}

func NewBicycleAdapter(b KilometerXMLReporter) *BicycleAdapter {
	return &BicycleAdapter{bicycle: b}
}

func (a *BicycleAdapter) MileageJSON() (string, error) {
	kmXML, err := a.bicycle.MileageXML()
	if err != nil {
		return "", err
	}
	return ConvertKmXMLToMilesJSON(kmXML)
}

// ConvertKmXMLToMilesJSON turns a kilometer XML document into a mile JSON
// document.
func ConvertKmXMLToMilesJSON(kmXML string) (string, error) {
	var doc mileageXML
	if err := xml.Unmarshal([]byte(kmXML), &doc); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidMileage, err)
	}
	return encodeMiles(doc.Mileage * MilesPerKilometer)
}

// Miles decodes the mileage reported by r.
func Miles(r MileageReporter) (float64, error) {
	body, err := r.MileageJSON()
	if err != nil {
		return 0, err
	}
	var doc mileageJSON
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidMileage, err)
	}
	return doc.Mileage, nil
}

func encodeMiles(miles float64) (string, error) {
	v, err := json.Marshal(mileageJSON{Mileage: miles})
	if err != nil {
		return "", fmt.Errorf("failed to encode mileage: %w", err)
	}
	return string(v), nil
}
