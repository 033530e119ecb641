package config

import (
	"os"
	"gopkg.in/yaml.v3"

	"pixveil/cryptography"
	"pixveil/util"
)

const (
	// the convention-fixed marker embedded first in every stego file
	DefaultSignature = "#*"
)

/*
 * Full configuration of the tool. Defaults are fine for everything,
 * the file exists so that a user can pin their own signature, output
 * names and logger behaviour.
 */
type FullConfig struct {
	Logger		util.LoggerInfo	`yaml:"logger_config"`
	Signature	string		`yaml:"signature"`
	StegoName	string		`yaml:"default_stego_name"`
	OutputBase	string		`yaml:"default_output_name"`
}

func DefaultConfig() *FullConfig {
	return &FullConfig{
		Logger: util.LoggerInfo{
			Filename: "pixveil.log",
			Mode: util.Error | util.Warning,
		},
		Signature: DefaultSignature,
	}
}

/*
 * Functions for loading and saving configuration in YAML format.
 */
func LoadConfig( filename string, key []byte ) (*FullConfig, error) {
	data, err := LoadEncrypted( filename, key )
	if err != nil {
		return nil, err
	}

	var conf FullConfig
	if err := yaml.Unmarshal( data, &conf ); err != nil {
		return nil, err
	}
	if conf.Signature == "" {
		conf.Signature = DefaultSignature
	}
	return &conf, nil
}

func SaveConfig( filename string, key []byte, c *FullConfig ) error {
	data, err := yaml.Marshal( *c )
	if err != nil {
		return err
	}
	return SaveEncrypted( filename, key, data )
}

/*
 * Functions for saving and loading encrypted files.
 */
func LoadEncrypted( filename string, key []byte ) ([]byte, error) {
	data, err := os.ReadFile( filename )
	if err != nil {
		return nil, err
	}
	if key != nil && len(key) == cryptography.SymKeySize {
		return cryptography.Decrypt( data, key )
	}
	// return unencrypted data
	return data, nil
}

func SaveEncrypted( filename string, key, data []byte ) error {

	var err error
	if key != nil && len(key) == cryptography.SymKeySize {
		data, err = cryptography.Encrypt( data, key )
		if err != nil {
			return err
		}
	}
	if err := os.WriteFile( filename, data, 0600 ); err != nil {
		return err
	}
	return nil
}
