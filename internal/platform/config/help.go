// internal/platform/config/help.go
package config

// LongHelp es el texto largo del comando raíz.
const LongHelp = `modelfetch - model asset acquisition

Fetches third-party model assets (OCR weights, TTS engines) into a models
directory. Each asset declares an ordered chain of strategies (pip install,
git clone + source install, python warm-up); the first one that succeeds wins.
When every strategy fails, remediation hints are printed and the exit status
is 1.

ENVIRONMENT:
  MODELFETCH_PYTHON            Python interpreter (default: python3)
  MODELFETCH_GIT               git executable (default: git)
  MODELFETCH_CATALOG           Asset catalog file (.yaml or .hcl)
  MODELFETCH_STRATEGY_TIMEOUT  Per-strategy timeout in seconds (0 = none)
  MODELFETCH_ASSUME_YES        Accept license prompts
  MODELFETCH_NO_COLOR          Disable colored output
  MODELFETCH_LOG_LEVEL         debug, info, warn, error
  MODELFETCH_OUTPUT            pretty, raw or json

Flags override environment variables.`

// Examples se muestra bajo "Examples:" en la ayuda.
const Examples = `  # Download PaddleOCR weights into ./models
  modelfetch fetch paddleocr ./models

  # Install CosyVoice, accepting the Xcode license prompt on macOS
  modelfetch fetch cosyvoice ./models --yes

  # Check whether IndexTTS2 is already in place
  modelfetch check indextts2 ./models

  # Use a custom catalog
  modelfetch --catalog assets.hcl list`
