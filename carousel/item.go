package carousel

import (
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
)

// ItemKind is the content category shown by the presentation layer
type ItemKind uint8

const (
	KindLink ItemKind = iota
	KindVoice
	KindVideo
	KindText
	KindImage

	kindCount
)

func (k ItemKind) String() string {
	switch k {
	case KindLink:
		return "Link"
	case KindVoice:
		return "Voice"
	case KindVideo:
		return "Video"
	case KindText:
		return "Text"
	case KindImage:
		return "Image"
	default:
		return "Unknown"
	}
}

// Palette cycles by item index
var Palette = []colorful.Color{
	{R: 0.92, G: 0.26, B: 0.24}, // red
	{R: 0.20, G: 0.47, B: 0.96}, // blue
	{R: 0.20, G: 0.78, B: 0.35}, // green
	{R: 1.00, G: 0.80, B: 0.00}, // yellow
	{R: 0.69, G: 0.32, B: 0.87}, // purple
	{R: 1.00, G: 0.58, B: 0.00}, // orange
}

// Item is immutable once generated
type Item struct {
	ID    uuid.UUID
	Index int
	Kind  ItemKind
	Color colorful.Color
}

// Label returns the short display identifier (first four hex digits of the ID)
func (it Item) Label() string {
	return it.ID.String()[:4]
}

// GenerateItems builds n items with fresh IDs; kinds are drawn from rng
func GenerateItems(n int, rng *rand.Rand) []Item {
	if n <= 0 {
		return nil
	}
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{
			ID:    uuid.New(),
			Index: i,
			Kind:  ItemKind(rng.IntN(int(kindCount))),
			Color: Palette[i%len(Palette)],
		}
	}
	return items
}
