package entity

// SerialNo número de serie con el lote al que pertenece y su bodega actual.
// Warehouse vacío indica que el serial no está en existencia.
type SerialNo struct {
	Name      string
	ItemCode  string
	BatchNo   string
	Warehouse string
}
