package solar

// provinces is the reference table of Turkish province centres, ordered by
// licence-plate code.
var provinces = []Location{
	{ID: "01", Name: "Adana", Lat: 37.0, Lon: 35.3213},
	{ID: "02", Name: "Adıyaman", Lat: 37.7648, Lon: 38.2786},
	{ID: "03", Name: "Afyonkarahisar", Lat: 38.7569, Lon: 30.5433},
	{ID: "04", Name: "Ağrı", Lat: 39.7191, Lon: 43.0503},
	{ID: "05", Name: "Amasya", Lat: 40.6539, Lon: 35.8331},
	{ID: "06", Name: "Ankara", Lat: 39.9208, Lon: 32.8541},
	{ID: "07", Name: "Antalya", Lat: 36.8841, Lon: 30.7056},
	{ID: "08", Name: "Artvin", Lat: 41.1828, Lon: 41.8183},
	{ID: "09", Name: "Aydın", Lat: 37.856, Lon: 27.8416},
	{ID: "10", Name: "Balıkesir", Lat: 39.6484, Lon: 27.8826},
	{ID: "11", Name: "Bilecik", Lat: 40.15, Lon: 29.9833},
	{ID: "12", Name: "Bingöl", Lat: 38.8848, Lon: 40.4938},
	{ID: "13", Name: "Bitlis", Lat: 38.4, Lon: 42.1167},
	{ID: "14", Name: "Bolu", Lat: 40.7359, Lon: 31.6111},
	{ID: "15", Name: "Burdur", Lat: 37.7203, Lon: 30.29},
	{ID: "16", Name: "Bursa", Lat: 40.195, Lon: 29.06},
	{ID: "17", Name: "Çanakkale", Lat: 40.1553, Lon: 26.4142},
	{ID: "18", Name: "Çankırı", Lat: 40.6013, Lon: 33.6134},
	{ID: "19", Name: "Çorum", Lat: 40.5506, Lon: 34.9556},
	{ID: "20", Name: "Denizli", Lat: 37.7765, Lon: 29.0864},
	{ID: "21", Name: "Diyarbakır", Lat: 37.9144, Lon: 40.2306},
	{ID: "22", Name: "Edirne", Lat: 41.6772, Lon: 26.5557},
	{ID: "23", Name: "Elazığ", Lat: 38.6789, Lon: 39.2222},
	{ID: "24", Name: "Erzincan", Lat: 39.75, Lon: 39.5},
	{ID: "25", Name: "Erzurum", Lat: 39.9083, Lon: 41.2769},
	{ID: "26", Name: "Eskişehir", Lat: 39.7767, Lon: 30.5206},
	{ID: "27", Name: "Gaziantep", Lat: 37.0662, Lon: 37.3833},
	{ID: "28", Name: "Giresun", Lat: 40.9128, Lon: 38.3895},
	{ID: "29", Name: "Gümüşhane", Lat: 40.46, Lon: 39.4819},
	{ID: "30", Name: "Hakkâri", Lat: 37.5744, Lon: 43.74},
	{ID: "31", Name: "Hatay", Lat: 36.2028, Lon: 36.16},
	{ID: "32", Name: "Isparta", Lat: 37.7648, Lon: 30.5566},
	{ID: "33", Name: "Mersin", Lat: 36.8, Lon: 34.6417},
	{ID: "34", Name: "İstanbul", Lat: 41.0053, Lon: 28.977},
	{ID: "35", Name: "İzmir", Lat: 38.4192, Lon: 27.1287},
	{ID: "36", Name: "Kars", Lat: 40.6083, Lon: 43.0972},
	{ID: "37", Name: "Kastamonu", Lat: 41.3781, Lon: 33.775},
	{ID: "38", Name: "Kayseri", Lat: 38.7312, Lon: 35.4787},
	{ID: "39", Name: "Kırklareli", Lat: 41.7333, Lon: 27.2167},
	{ID: "40", Name: "Kırşehir", Lat: 39.1422, Lon: 34.1703},
	{ID: "41", Name: "Kocaeli", Lat: 40.765, Lon: 29.94},
	{ID: "42", Name: "Konya", Lat: 37.8716, Lon: 32.4847},
	{ID: "43", Name: "Kütahya", Lat: 39.42, Lon: 29.9833},
	{ID: "44", Name: "Malatya", Lat: 38.355, Lon: 38.3092},
	{ID: "45", Name: "Manisa", Lat: 38.6191, Lon: 27.4289},
	{ID: "46", Name: "Kahramanmaraş", Lat: 37.5833, Lon: 36.9333},
	{ID: "47", Name: "Mardin", Lat: 37.3122, Lon: 40.735},
	{ID: "48", Name: "Muğla", Lat: 37.215, Lon: 28.3636},
	{ID: "49", Name: "Muş", Lat: 38.7439, Lon: 41.5069},
	{ID: "50", Name: "Nevşehir", Lat: 38.6244, Lon: 34.7142},
	{ID: "51", Name: "Niğde", Lat: 37.9667, Lon: 34.6833},
	{ID: "52", Name: "Ordu", Lat: 40.9833, Lon: 37.8833},
	{ID: "53", Name: "Rize", Lat: 41.0201, Lon: 40.5234},
	{ID: "54", Name: "Sakarya", Lat: 40.7766, Lon: 30.3945},
	{ID: "55", Name: "Samsun", Lat: 41.2867, Lon: 36.33},
	{ID: "56", Name: "Siirt", Lat: 37.9333, Lon: 41.95},
	{ID: "57", Name: "Sinop", Lat: 42.0231, Lon: 35.1533},
	{ID: "58", Name: "Sivas", Lat: 39.7477, Lon: 37.0179},
	{ID: "59", Name: "Tekirdağ", Lat: 40.9833, Lon: 27.5167},
	{ID: "60", Name: "Tokat", Lat: 40.3167, Lon: 36.55},
	{ID: "61", Name: "Trabzon", Lat: 41.0017, Lon: 39.7178},
	{ID: "62", Name: "Tunceli", Lat: 39.1081, Lon: 39.54},
	{ID: "63", Name: "Şanlıurfa", Lat: 37.1675, Lon: 38.795},
	{ID: "64", Name: "Uşak", Lat: 38.68, Lon: 29.405},
	{ID: "65", Name: "Van", Lat: 38.5011, Lon: 43.4167},
	{ID: "66", Name: "Yozgat", Lat: 39.8181, Lon: 34.8147},
	{ID: "67", Name: "Zonguldak", Lat: 41.4564, Lon: 31.7987},
	{ID: "68", Name: "Aksaray", Lat: 38.3687, Lon: 34.0369},
	{ID: "69", Name: "Bayburt", Lat: 40.255, Lon: 40.2242},
	{ID: "70", Name: "Karaman", Lat: 37.1811, Lon: 33.215},
	{ID: "71", Name: "Kırıkkale", Lat: 39.8461, Lon: 33.515},
	{ID: "72", Name: "Batman", Lat: 37.8872, Lon: 41.1322},
	{ID: "73", Name: "Şırnak", Lat: 37.5211, Lon: 42.4611},
	{ID: "74", Name: "Bartın", Lat: 41.5811, Lon: 32.4611},
	{ID: "75", Name: "Ardahan", Lat: 41.11, Lon: 42.7025},
	{ID: "76", Name: "Iğdır", Lat: 39.8886, Lon: 44.0048},
	{ID: "77", Name: "Yalova", Lat: 40.65, Lon: 29.2667},
	{ID: "78", Name: "Karabük", Lat: 41.2, Lon: 32.6167},
	{ID: "79", Name: "Kilis", Lat: 36.7167, Lon: 37.1167},
	{ID: "80", Name: "Osmaniye", Lat: 37.0667, Lon: 36.2333},
	{ID: "81", Name: "Düzce", Lat: 40.8433, Lon: 31.1567},
}

// Provinces returns a copy of the reference table.
func Provinces() []Location {
	out := make([]Location, len(provinces))
	copy(out, provinces)
	return out
}
