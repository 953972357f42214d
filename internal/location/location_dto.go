package location

type RadiusResponse struct {
	Tikor      string  `json:"tikor"`
	NamaLokasi string  `json:"nama_lokasi"`
	Radius     float64 `json:"radius"`
}

type LocationResponse struct {
	Kode   string `json:"kode"`
	Lokasi string `json:"lokasi"`
	NoUrut *int   `json:"no_urut"`
}
