package inventory

// Catálogo fijo de tallas. Todo inventario por talla (stock y bodega)
// solo admite claves de este catálogo.
var (
	AdultSizes = []string{"S", "M", "L", "XL", "XXL", "3XL", "4XL"}
	KidSizes   = []string{"16", "18", "20", "22", "24", "26", "28"}
)

// AllSizes tallas válidas en orden canónico: adultos y luego niños.
var AllSizes = append(append([]string{}, AdultSizes...), KidSizes...)

var sizeSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(AllSizes))
	for _, s := range AllSizes {
		set[s] = struct{}{}
	}
	return set
}()

// IsValidSize indica si la talla pertenece al catálogo.
func IsValidSize(size string) bool {
	_, ok := sizeSet[size]
	return ok
}
