package kriterion

import (
	"encoding/base64"
	"encoding/json"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/gocarina/gocsv"
	"github.com/tantralabs/logger"

	"github.com/quantlabs/kriterion/models"
	"github.com/quantlabs/kriterion/settings"
)

// LoadConfiguration reads a backtest config from a local json file, or from
// an amazon secrets manager secret when the config carries credentials that
// should not live on disk.
func LoadConfiguration(file string, secret bool) (settings.Config, error) {
	var config settings.Config
	if secret {
		raw := getSecret(file)
		if err := json.Unmarshal([]byte(raw), &config); err != nil {
			return config, err
		}
		return config, nil
	}
	configFile, err := os.Open(file)
	if err != nil {
		return config, err
	}
	defer configFile.Close()
	if err := json.NewDecoder(configFile).Decode(&config); err != nil {
		return config, err
	}
	return config, nil
}

func getSecret(secretName string) string {
	svc := secretsmanager.New(session.New(), aws.NewConfig().WithRegion("us-west-1"))
	input := &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(secretName),
		VersionStage: aws.String("AWSCURRENT"),
	}

	result, err := svc.GetSecretValue(input)
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok {
			logger.Errorf("Failed to fetch secret %v: %v %v\n", secretName, aerr.Code(), aerr.Message())
		} else {
			logger.Errorf("Failed to fetch secret %v: %v\n", secretName, err)
		}
		return ""
	}

	if result.SecretString != nil {
		return *result.SecretString
	}
	decoded := make([]byte, base64.StdEncoding.DecodedLen(len(result.SecretBinary)))
	n, err := base64.StdEncoding.Decode(decoded, result.SecretBinary)
	if err != nil {
		logger.Errorf("Failed to decode binary secret %v: %v\n", secretName, err)
		return ""
	}
	return string(decoded[:n])
}

// LoadBars reads daily bars from a csv file. The result is sorted by
// timestamp with duplicate timestamps dropped (first occurrence wins), so it
// satisfies the simulator's strictly-increasing precondition.
func LoadBars(csvFile string) ([]*models.Bar, error) {
	dataFile, err := os.Open(csvFile)
	if err != nil {
		return nil, err
	}
	defer dataFile.Close()

	var bars []*models.Bar
	if err := gocsv.UnmarshalFile(dataFile, &bars); err != nil {
		return nil, err
	}
	return models.SortBars(bars), nil
}
