package transfer

// Config holds configuration for the supplier feed host.
type Config struct {
	// Host is the FTP host serving the feed.
	Host string `mapstructure:"host" default:"ftp1.toolbank.com"`
	// Port is the FTP control port.
	Port int `mapstructure:"port" default:"21"`
	// User is the FTP account name. Supplied via environment, never defaulted.
	User string `mapstructure:"user" default:""`
	// Password is the FTP account password. Supplied via environment, never defaulted.
	Password string `mapstructure:"password" default:""`
	// TimeoutSeconds is the dial timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// PricingPath is the remote path of the pricing table.
	PricingPath string `mapstructure:"pricing_path" default:"Invictatools_9051.csv"`
	// ProductsPath is the remote path of the product table (.xlsx or .csv).
	ProductsPath string `mapstructure:"products_path" default:"Data/ToolbankDataExport.xlsx"`
	// AvailabilityPath is the remote path of the stock availability table.
	AvailabilityPath string `mapstructure:"availability_path" default:"UnitData-01/Availability01D.csv"`
}
