package commands

const DEFAULT_SPREADSHEET = "1wRDzNImkWSDmS5uZAgaECFO7X8HO2XO2f69FqQ1Qu7k"
const DEFAULT_WORKSHEET = "Rules"
const DEFAULT_ADDR = ":8080"
const SHEETS = "https://www.googleapis.com/auth/spreadsheets"
const CREDENTIALS_ENV = "GOOGLE_SHEETS_CREDENTIALS"
