package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	Install struct {
		Root      string `json:"root"`
		Vendor    string `json:"vendor"`
		Product   string `json:"product"`
		ValueName string `json:"value_name"`
		SubPath   string `json:"sub_path"`
	} `json:"install,omitempty"`

	Dependency struct {
		Vendor         string `json:"vendor"`
		Family         string `json:"family"`
		Product        string `json:"product"`
		Version        string `json:"version"`
		DisplayName    string `json:"display_name"`
		DisplayVersion string `json:"display_version"`
	} `json:"dependency,omitempty"`

	Registry struct {
		FilePath string `json:"file"`
	} `json:"registry,omitempty"`

	Paths struct {
		DocumentsFolder string `json:"documents_folder"`
	} `json:"paths,omitempty"`

	Display struct {
		Width    int  `json:"width"`
		Height   int  `json:"height"`
		Windowed bool `json:"windowed"`
	} `json:"display,omitempty"`

	Storage struct {
		DSN      string `json:"dsn"`
		FileName string `json:"file_name"`
	} `json:"storage,omitempty"`

	Directory struct {
		URL            string   `json:"url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"directory,omitempty"`

	DirectoryServer struct {
		Address    string `json:"address"`
		CitiesFile string `json:"cities_file"`
	} `json:"directory_server,omitempty"`

	Launcher struct {
		Executable string `json:"executable"`
		Reporter   string `json:"reporter"`
		ListCities bool   `json:"list_cities"`
	} `json:"launcher,omitempty"`

	Log struct {
		Level    string `json:"level"`
		FilePath string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Install: Install{
			Root:      jsonCfg.Install.Root,
			Vendor:    jsonCfg.Install.Vendor,
			Product:   jsonCfg.Install.Product,
			ValueName: jsonCfg.Install.ValueName,
			SubPath:   jsonCfg.Install.SubPath,
		},
		Dependency: Dependency{
			Vendor:         jsonCfg.Dependency.Vendor,
			Family:         jsonCfg.Dependency.Family,
			Product:        jsonCfg.Dependency.Product,
			Version:        jsonCfg.Dependency.Version,
			DisplayName:    jsonCfg.Dependency.DisplayName,
			DisplayVersion: jsonCfg.Dependency.DisplayVersion,
		},
		Registry: Registry{FilePath: jsonCfg.Registry.FilePath},
		Paths:    Paths{DocumentsFolder: jsonCfg.Paths.DocumentsFolder},
		Display: Display{
			Width:    jsonCfg.Display.Width,
			Height:   jsonCfg.Display.Height,
			Windowed: jsonCfg.Display.Windowed,
		},
		Storage: Storage{
			DSN:      jsonCfg.Storage.DSN,
			FileName: jsonCfg.Storage.FileName,
		},
		Directory: Directory{
			URL:            jsonCfg.Directory.URL,
			RequestTimeout: time.Duration(jsonCfg.Directory.RequestTimeout),
		},
		DirectoryServer: DirectoryServer{
			Address:    jsonCfg.DirectoryServer.Address,
			CitiesFile: jsonCfg.DirectoryServer.CitiesFile,
		},
		Launcher: Launcher{
			Executable: jsonCfg.Launcher.Executable,
			Reporter:   jsonCfg.Launcher.Reporter,
			ListCities: jsonCfg.Launcher.ListCities,
		},
		Log: Log{
			Level:    jsonCfg.Log.Level,
			FilePath: jsonCfg.Log.FilePath,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
