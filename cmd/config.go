package cmd

type Config struct {
	HTTPPort       string
	ExportFilePath string
	ExportSchedule string
}
