package entities

// DefaultRegions is the built-in catalogue of monitored regions: the 36
// Nigerian states plus the FCT, with state-capital coordinates and the
// historical flood-risk label of each state.
func DefaultRegions() []Region {
	return []Region{
		{Code: "AB", Name: "Abia", RiskLabel: RiskHigh, Lat: 5.5333, Lon: 7.4833},
		{Code: "AD", Name: "Adamawa", RiskLabel: RiskHigh, Lat: 9.2000, Lon: 12.4833},
		{Code: "AK", Name: "Akwa Ibom", RiskLabel: RiskHigh, Lat: 5.0333, Lon: 7.9167},
		{Code: "AN", Name: "Anambra", RiskLabel: RiskCritical, Lat: 6.2107, Lon: 7.0743},
		{Code: "BA", Name: "Bauchi", RiskLabel: RiskMedium, Lat: 10.3158, Lon: 9.8442},
		{Code: "BY", Name: "Bayelsa", RiskLabel: RiskCritical, Lat: 4.9167, Lon: 6.2667},
		{Code: "BE", Name: "Benue", RiskLabel: RiskHigh, Lat: 7.7322, Lon: 8.5391},
		{Code: "BO", Name: "Borno", RiskLabel: RiskLow, Lat: 11.8333, Lon: 13.1500},
		{Code: "CR", Name: "Cross River", RiskLabel: RiskHigh, Lat: 4.9500, Lon: 8.3167},
		{Code: "DE", Name: "Delta", RiskLabel: RiskCritical, Lat: 6.2000, Lon: 6.7333},
		{Code: "EB", Name: "Ebonyi", RiskLabel: RiskHigh, Lat: 6.3333, Lon: 8.1000},
		{Code: "ED", Name: "Edo", RiskLabel: RiskHigh, Lat: 6.3333, Lon: 5.6167},
		{Code: "EK", Name: "Ekiti", RiskLabel: RiskMedium, Lat: 7.6167, Lon: 5.2167},
		{Code: "EN", Name: "Enugu", RiskLabel: RiskMedium, Lat: 6.4500, Lon: 7.5000},
		{Code: "FCT", Name: "Abuja", RiskLabel: RiskMedium, Lat: 9.0765, Lon: 7.3986},
		{Code: "GO", Name: "Gombe", RiskLabel: RiskMedium, Lat: 10.2894, Lon: 11.1717},
		{Code: "IM", Name: "Imo", RiskLabel: RiskHigh, Lat: 5.4833, Lon: 7.0333},
		{Code: "KD", Name: "Kaduna", RiskLabel: RiskMedium, Lat: 10.5200, Lon: 7.4383},
		{Code: "KN", Name: "Kano", RiskLabel: RiskLow, Lat: 12.0000, Lon: 8.5167},
		{Code: "KT", Name: "Katsina", RiskLabel: RiskLow, Lat: 12.9908, Lon: 7.6019},
		{Code: "KE", Name: "Kebbi", RiskLabel: RiskMedium, Lat: 12.4500, Lon: 4.2000},
		{Code: "KO", Name: "Kogi", RiskLabel: RiskMedium, Lat: 7.8019, Lon: 6.7446},
		{Code: "KW", Name: "Kwara", RiskLabel: RiskMedium, Lat: 8.5000, Lon: 4.5500},
		{Code: "LA", Name: "Lagos", RiskLabel: RiskCritical, Lat: 6.5244, Lon: 3.3792},
		{Code: "NA", Name: "Nasarawa", RiskLabel: RiskMedium, Lat: 8.5000, Lon: 8.2000},
		{Code: "NI", Name: "Niger", RiskLabel: RiskMedium, Lat: 9.6000, Lon: 6.5500},
		{Code: "OG", Name: "Ogun", RiskLabel: RiskHigh, Lat: 7.1500, Lon: 3.3500},
		{Code: "ON", Name: "Ondo", RiskLabel: RiskMedium, Lat: 7.2500, Lon: 5.2000},
		{Code: "OS", Name: "Osun", RiskLabel: RiskMedium, Lat: 7.7667, Lon: 4.5667},
		{Code: "OY", Name: "Oyo", RiskLabel: RiskMedium, Lat: 7.3833, Lon: 3.9000},
		{Code: "PL", Name: "Plateau", RiskLabel: RiskLow, Lat: 9.9167, Lon: 8.9000},
		{Code: "RI", Name: "Rivers", RiskLabel: RiskCritical, Lat: 4.7500, Lon: 7.0000},
		{Code: "SO", Name: "Sokoto", RiskLabel: RiskLow, Lat: 13.0667, Lon: 5.2333},
		{Code: "TA", Name: "Taraba", RiskLabel: RiskHigh, Lat: 8.9000, Lon: 11.3667},
		{Code: "YO", Name: "Yobe", RiskLabel: RiskLow, Lat: 11.7500, Lon: 11.9667},
		{Code: "ZA", Name: "Zamfara", RiskLabel: RiskLow, Lat: 12.1700, Lon: 6.6600},
	}
}
