package main
import (
	"os"
	"fmt"
	"path/filepath"

	"pixveil/util"
	"pixveil/config"
	"pixveil/stegano"
)

const (
	PixveilFolder = ".pixveil"
	ConfigFilename = "config.yaml"
)

func main() {

	if len( os.Args ) < 2 || os.Args[1] == "-h" || os.Args[1] == "--help" {
		help()
		return
	}

	conf := loadConfig()
	logger := util.NewLogger( &conf.Logger )

	// positional arguments and flags for the selected operation
	positional, signature, usePassword := parseArgs( os.Args[2:], conf.Signature )

	var password []byte
	if usePassword {
		pass, err := util.GetPasswd( "Enter password: " )
		if err != nil {
			fatal( "Failed to read password:", err )
		}
		password = pass
	}

	switch os.Args[1] {
	case "-e":
		if len(positional) < 2 {
			help()
			return
		}
		stegoName := conf.StegoName
		if len(positional) > 2 {
			stegoName = positional[2]
		}
		req := stegano.EncodeRequest{
			CarrierName: positional[0],
			SecretName: positional[1],
			StegoName: stegoName,
			Signature: signature,
			Password: password,
		}
		if err := stegano.Encode( &req ); err != nil {
			logger.LogError( err )
			fatal( "Encoding failed:", err )
		}
		if stegoName == "" {
			stegoName = stegano.DefaultStegoName
		}
		logger.LogInfo( "encoded " + positional[1] + " into " + stegoName )
		fmt.Println( "Done. Stego image:", stegoName )

	case "-d":
		if len(positional) < 1 {
			help()
			return
		}
		outputBase := conf.OutputBase
		if len(positional) > 1 {
			outputBase = positional[1]
		}
		if signature == "" {
			// same contract as always: the caller supplies the
			// signature, the file is never trusted about it
			fmt.Println( "Enter the signature to decode:" )
			if _, err := fmt.Scan( &signature ); err != nil {
				fatal( "Failed to read signature:", err )
			}
		}
		req := stegano.DecodeRequest{
			StegoName: positional[0],
			OutputBase: outputBase,
			Signature: signature,
			Password: password,
		}
		outName, err := stegano.Decode( &req )
		if err != nil {
			logger.LogError( err )
			fatal( "Decoding failed:", err )
		}
		logger.LogInfo( "decoded " + positional[0] + " into " + outName )
		fmt.Println( "Done. Recovered file:", outName )

	case "-c":
		if len(positional) < 2 {
			help()
			return
		}
		usable, required, ok, err := stegano.Fits( positional[0], positional[1], signature )
		if err != nil {
			fatal( "Capacity check failed:", err )
		}
		fmt.Println( "Usable carrier bytes:", usable )
		fmt.Println( "Required carrier bytes:", required )
		if ok {
			fmt.Println( "The secret fits." )
		} else {
			fmt.Println( "The secret does not fit." )
			os.Exit( 1 )
		}

	default:
		help()
	}
}

// parseArgs splits the operation arguments into positional ones and
// the -m/-p flags. -m overrides the configured signature.
func parseArgs( args []string, signature string ) ([]string, string, bool) {
	positional := []string{}
	usePassword := false
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-p":
			usePassword = true
		case "-m":
			if i + 1 < len(args) {
				signature = args[i+1]
				i++
			}
		default:
			positional = append( positional, args[i] )
		}
	}
	return positional, signature, usePassword
}

// loadConfig reads ~/.pixveil/config.yaml when it exists, otherwise
// runs with defaults. The log file lands in the same folder.
func loadConfig() *config.FullConfig {
	home, err := os.UserHomeDir()
	if err != nil {
		return config.DefaultConfig()
	}
	folder := filepath.Join( home, PixveilFolder )

	conf, err := config.LoadConfig( filepath.Join( folder, ConfigFilename ), nil )
	if err != nil {
		conf = config.DefaultConfig()
	}
	if filepath.IsAbs( conf.Logger.Filename ) == false {
		if err := os.MkdirAll( folder, 0700 ); err == nil {
			conf.Logger.Filename = filepath.Join( folder, conf.Logger.Filename )
		}
	}
	return conf
}

func help() {
	fmt.Println( "pixveil - hide a secret file inside a 24-bit bitmap image" )
	fmt.Println()
	fmt.Println( "Usage:" )
	fmt.Println( "\tpixveil -e <carrier.bmp> <secret file> [stego.bmp]\tencode" )
	fmt.Println( "\tpixveil -d <stego.bmp> [output name]\t\t\tdecode" )
	fmt.Println( "\tpixveil -c <carrier.bmp> <secret file>\t\t\tcapacity check" )
	fmt.Println()
	fmt.Println( "Options:" )
	fmt.Println( "\t-m <signature>\toverride the configured signature (default \"#*\")" )
	fmt.Println( "\t-p\t\tprotect the payload with a password" )
}

func fatal( args ...any ) {
	fmt.Println( args... )
	os.Exit( 1 )
}
