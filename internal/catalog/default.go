package catalog

const imageServerType = "ImageServer"

// Default returns the built-in TEMPO layer and variable tables.
func Default() *Catalog {
	layers := []Layer{
		{
			ID:            "NO2_Hourly",
			Title:         "NO2 Hourly",
			URL:           "https://gis.earthdata.nasa.gov/image/rest/services/C2930763263-LARC_CLOUD/TEMPO_NO2_L3_V03_HOURLY_TROPOSPHERIC_VERTICAL_COLUMN/ImageServer",
			Type:          imageServerType,
			VariableName:  "NO2_Troposphere",
			VariableLabel: "NO2",
			Opacity:       1,
		},
		{
			ID:            "NO2_Daily",
			Title:         "NO2 Daily",
			URL:           "https://gis.earthdata.nasa.gov/gp/rest/services/Hosted/TEMPO_NO2_L3_V03_Daily_Maximum/ImageServer",
			Type:          imageServerType,
			VariableName:  "NO2_Troposphere",
			VariableLabel: "NO2",
			Opacity:       1,
		},
		{
			ID:            "NO2_Monthly",
			Title:         "NO2 Monthly",
			URL:           "https://gis.earthdata.nasa.gov/gp/rest/services/Hosted/TEMPO_NO2_L3_V03_Monthly_Mean/ImageServer",
			Type:          imageServerType,
			VariableName:  "NO2_Troposphere",
			VariableLabel: "NO2",
			Opacity:       1,
		},
		{
			ID:            "HCHO_Hourly",
			Title:         "HCHO Hourly",
			URL:           "https://gis.earthdata.nasa.gov/image/rest/services/C2930761273-LARC_CLOUD/TEMPO_HCHO_L3_V03_HOURLY_VERTICAL_COLUMN/ImageServer",
			Type:          imageServerType,
			VariableName:  "HCHO",
			VariableLabel: "HCHO",
			Opacity:       1,
		},
		{
			ID:            "HCHO_Daily",
			Title:         "HCHO Daily",
			URL:           "https://gis.earthdata.nasa.gov/gp/rest/services/Hosted/TEMPO_HCHO_L3_V03_Daily_Maximum/ImageServer",
			Type:          imageServerType,
			VariableName:  "HCHO",
			VariableLabel: "HCHO",
			Opacity:       1,
		},
		{
			ID:            "HCHO_Monthly",
			Title:         "HCHO Monthly",
			URL:           "https://gis.earthdata.nasa.gov/gp/rest/services/Hosted/TEMPO_HCHO_L3_V03_Monthly_Mean/ImageServer",
			Type:          imageServerType,
			VariableName:  "HCHO",
			VariableLabel: "HCHO",
			Opacity:       1,
		},
	}

	variables := []Variable{
		{Label: "NO2", Unit: "trillion molecules/cm²", Dimension: "Tropospheric Vertical Column Density"},
		{Label: "HCHO", Unit: "trillion molecules/cm²", Dimension: "Tropospheric Vertical Column Density"},
	}

	catalog, err := New(layers, variables, "NO2")
	if err != nil {
		panic(err)
	}
	return catalog
}
