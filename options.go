package main

type options struct {
	dataDir    string
	configPath string
	audio      string
	crates     int

	muteAudio    bool
	debugMode    bool
	placeholders bool
	fullscreen   bool
}
