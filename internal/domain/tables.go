package domain

var Tables = []interface{}{
	// System
	&SysConfig{},
	&SysOpr{},
	&SysOprLog{},
	// Content
	&TourPackage{},
	&BlogPost{},
	&TravelDiary{},
	&MediaAsset{},
	// CRM
	&Lead{},
	&Review{},
	// Taxi
	&Vehicle{},
	&TaxiRoute{},
}
