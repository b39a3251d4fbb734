package sun

// Tile is the light value at the top boundary of one grid column. Tiles are
// rederived from the intensity model every tick and never persisted.
type Tile struct {
	// Intensity is the scalar ray intensity entering the column.
	Intensity float64
}

// Tiles evaluates the model for every column at the given tick. The scalar
// value of a tile is the sum of the two model components.
func Tiles(model Intensity, tick int) []Tile {
	tiles := make([]Tile, model.Size())
	for column := range tiles {
		primary, secondary := model.At(column, tick)
		tiles[column] = Tile{Intensity: primary + secondary}
	}
	return tiles
}
