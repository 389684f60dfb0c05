package sync

// Config holds configuration for the sync pipeline itself.
type Config struct {
	// WorkDir is the directory feed files are downloaded into.
	WorkDir string `mapstructure:"work_dir" default:"."`
	// OutputFile is the path of the generated import file.
	OutputFile string `mapstructure:"output_file" default:"toolbank_import.csv"`
	// BaselinePath is the path of the persisted SKU baseline.
	BaselinePath string `mapstructure:"baseline_path" default:"known_skus.json"`
	// ImageBaseURL prefixes generated product image URLs.
	ImageBaseURL string `mapstructure:"image_base_url" default:"https://www.toolbank.com/productimages/"`
	// ImageExtension is appended to image references.
	ImageExtension string `mapstructure:"image_extension" default:".jpg"`
}
