package transport

import (
	"encoding/json"
	"runtime"
)

// Library identification sent with every vault and connection call.
const (
	SDKName    = "vaultclient"
	SDKVersion = "1.0.0"

	// MetadataHeader carries the client metadata JSON.
	MetadataHeader = "sky-metadata"
)

type clientMetadata struct {
	NameVersion string `json:"sdk_name_version"`
	DeviceModel string `json:"sdk_client_device_model"`
	OSDetails   string `json:"sdk_client_os_details"`
	Runtime     string `json:"sdk_runtime_details"`
}

// Metadata returns the value of the metadata header.
func Metadata() string {
	data, err := json.Marshal(clientMetadata{
		NameVersion: SDKName + "@" + SDKVersion,
		DeviceModel: runtime.GOARCH,
		OSDetails:   runtime.GOOS,
		Runtime:     "go " + runtime.Version(),
	})
	if err != nil {
		return ""
	}
	return string(data)
}
